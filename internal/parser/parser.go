// Package parser turns a token stream into an ast.Module.
package parser

import (
	"fmt"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/lexer"
	"ember/internal/source"
	"ember/internal/token"
)

// Parser holds the state needed to parse a single file: a two-token
// lookahead (tok, tok2) over the lexer and the reporter diagnostics are appended to.
type Parser struct {
	lx       *lexer.Lexer
	reporter diag.Reporter
	tok      token.Token
	tok2     token.Token
	path     string
	lastSpan source.Span // span of the most recently consumed token
}

// New constructs a Parser positioned before the first token.
func New(lx *lexer.Lexer, reporter diag.Reporter, path string) *Parser {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	p := &Parser{lx: lx, reporter: reporter, path: path}
	p.tok = p.lx.Next()
	p.tok2 = p.lx.Next()
	return p
}

// peek2 returns the token after the current one.
func (p *Parser) peek2() token.Token { return p.tok2 }

// ParseModule parses a whole file: import* foreign-import* type-def* function-def*.
func ParseModule(lx *lexer.Lexer, reporter diag.Reporter, path string) *ast.Module {
	p := New(lx, reporter, path)
	return p.parseModule()
}

func (p *Parser) peek() token.Token { return p.tok }

func (p *Parser) at(k token.Kind) bool { return p.tok.Kind == k }

func (p *Parser) atOr(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.tok.Kind == k {
			return true
		}
	}
	return false
}

func (p *Parser) advance() token.Token {
	cur := p.tok
	p.lastSpan = cur.Span
	p.tok = p.tok2
	p.tok2 = p.lx.Next()
	return cur
}

// expect consumes the current token if it matches k, reporting
// ParseUnexpectedToken and leaving the cursor in place otherwise.
func (p *Parser) expect(k token.Kind, what string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errorf(diag.ParseUnexpectedToken, p.tok.Span, "expected %s, found %q", what, p.tok.Text)
	return token.Token{}, false
}

func (p *Parser) errorf(code diag.Code, sp source.Span, format string, args ...any) {
	p.reporter.Report(diag.NewError(code, sp, fmt.Sprintf(format, args...)))
}

// resyncTop skips tokens until the start of a likely next top-level item,
// so one malformed declaration does not cascade into spurious errors for
// the rest of the file.
func (p *Parser) resyncTop() {
	for !p.at(token.EOF) {
		if p.atOr(token.KwImport, token.KwType, token.KwExport, token.KwForeign, token.Ident) {
			return
		}
		p.advance()
	}
}

func (p *Parser) parseModule() *ast.Module {
	mod := &ast.Module{Path: p.path}

	for p.at(token.KwImport) {
		if fi, ok := p.tryParseForeignImport(); ok {
			mod.ForeignImports = append(mod.ForeignImports, fi)
			continue
		}
		imp, ok := p.parseImport()
		if !ok {
			p.resyncTop()
			continue
		}
		mod.Imports = append(mod.Imports, imp)
	}

	for p.at(token.KwType) {
		td, ok := p.parseTypeDef()
		if !ok {
			p.resyncTop()
			continue
		}
		mod.Types = append(mod.Types, td)
	}

	for !p.at(token.EOF) {
		fn, ok := p.parseFunctionDef()
		if !ok {
			p.resyncTop()
			continue
		}
		mod.Functions = append(mod.Functions, fn)
	}

	return mod
}
