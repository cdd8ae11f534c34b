package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/token"
)

// parseFunctionDef parses `("export")? ("foreign" conv?)? name "=" lambda`.
func (p *Parser) parseFunctionDef() (ast.FunctionDef, bool) {
	start := p.peek().Span
	fn := ast.FunctionDef{}

	if p.at(token.KwExport) {
		p.advance()
		fn.Exported = true
	}

	if p.at(token.KwForeign) {
		p.advance()
		fn.ForeignExport = true
		if p.at(token.StringLit) {
			lit := p.advance()
			if lit.Text == "c" {
				fn.ForeignConv = ast.ConvC
			} else {
				p.errorf(diag.ParseUnexpectedToken, lit.Span, "unknown calling convention %q, expected \"c\"", lit.Text)
			}
		}
	}

	nameTok, ok := p.expect(token.Ident, "a function name")
	if !ok {
		return ast.FunctionDef{}, false
	}
	fn.Name = nameTok.Text

	if _, ok := p.expect(token.Assign, "'='"); !ok {
		return ast.FunctionDef{}, false
	}

	lambda, ok := p.parseLambda()
	if !ok {
		return ast.FunctionDef{}, false
	}
	fn.Lambda = lambda
	fn.Sp = start.Cover(p.lastSpan)
	return fn, true
}

// parseLambda parses `"\(" params ")" result "{" block "}"`.
func (p *Parser) parseLambda() (ast.Lambda, bool) {
	start, ok := p.expect(token.BackslashLParen, "'\\('")
	if !ok {
		return ast.Lambda{}, false
	}

	var params []ast.Param
	for !p.at(token.RParen) {
		nameTok, ok := p.expect(token.Ident, "a parameter name")
		if !ok {
			return ast.Lambda{}, false
		}
		ty, ok := p.parseType()
		if !ok {
			return ast.Lambda{}, false
		}
		params = append(params, ast.Param{Name: nameTok.Text, Type: ty, Sp: nameTok.Span.Cover(p.lastSpan)})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RParen, "')'"); !ok {
		return ast.Lambda{}, false
	}

	result, ok := p.parseType()
	if !ok {
		return ast.Lambda{}, false
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.Lambda{}, false
	}

	return ast.Lambda{
		Params: params,
		Result: result,
		Body:   body,
	}, true
}

// parseBlock parses `"{" statement+ "}"`, enforcing that the final
// statement is a bare (unbound) expression.
func (p *Parser) parseBlock() ([]ast.Stmt, bool) {
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, false
	}
	var stmts []ast.Stmt
	for !p.at(token.RBrace) {
		stmt, ok := p.parseStmt()
		if !ok {
			return nil, false
		}
		stmts = append(stmts, stmt)
		if p.at(token.RBrace) {
			break
		}
	}
	if _, ok := p.expect(token.RBrace, "'}'"); !ok {
		return nil, false
	}
	if len(stmts) == 0 || stmts[len(stmts)-1].Bound {
		p.errorf(diag.ParseUnexpectedToken, p.lastSpan, "a block must end with a bare expression")
		return nil, false
	}
	return stmts, true
}

// parseStmt parses `(ident "=")? expression`. Binding is only recognized
// when an identifier is immediately followed by "=" (not "==").
func (p *Parser) parseStmt() (ast.Stmt, bool) {
	start := p.peek().Span
	if p.at(token.Ident) && p.peek2().Kind == token.Assign {
		nameTok := p.advance()
		p.advance() // '='
		expr, ok := p.parseExpr()
		if !ok {
			return ast.Stmt{}, false
		}
		return ast.Stmt{Bound: true, Name: nameTok.Text, Expr: expr, Sp: start.Cover(p.lastSpan)}, true
	}
	expr, ok := p.parseExpr()
	if !ok {
		return ast.Stmt{}, false
	}
	return ast.Stmt{Expr: expr, Sp: start.Cover(p.lastSpan)}, true
}
