package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/token"
)

// tryParseForeignImport consumes `import foreign conv? name type` when the
// token after "import" is "foreign"; otherwise it leaves the cursor
// untouched and reports ok == false so the caller falls back to
// parseImport.
func (p *Parser) tryParseForeignImport() (ast.ForeignImport, bool) {
	if p.peek2().Kind != token.KwForeign {
		return ast.ForeignImport{}, false
	}
	start := p.peek().Span
	p.advance() // import
	p.advance() // foreign

	conv := ast.ConvNative
	if p.at(token.StringLit) {
		lit := p.advance()
		if lit.Text == "c" {
			conv = ast.ConvC
		} else {
			p.errorf(diag.ParseUnexpectedToken, lit.Span, "unknown calling convention %q, expected \"c\"", lit.Text)
		}
	}

	nameTok, ok := p.expect(token.Ident, "an identifier")
	if !ok {
		return ast.ForeignImport{}, true
	}
	ty, ok := p.parseType()
	if !ok {
		return ast.ForeignImport{}, true
	}
	return ast.ForeignImport{
		Name: nameTok.Text,
		Conv: conv,
		Type: ty,
		Sp:   start.Cover(p.lastSpan),
	}, true
}

// parseImport consumes `import path ("as" alias)? ("{" names "}")?`.
func (p *Parser) parseImport() (ast.Import, bool) {
	start, ok := p.expect(token.KwImport, "'import'")
	if !ok {
		return ast.Import{}, false
	}
	path, ok := p.parseModulePath()
	if !ok {
		return ast.Import{}, false
	}
	imp := ast.Import{Path: path, Sp: start.Span}

	if p.at(token.KwAs) {
		p.advance()
		aliasTok, ok := p.expect(token.Ident, "an identifier")
		if !ok {
			return ast.Import{}, false
		}
		imp.As, imp.HasAs = aliasTok.Text, true
	}

	if p.at(token.LBrace) {
		p.advance()
		for !p.at(token.RBrace) {
			nameTok, ok := p.expect(token.Ident, "an identifier")
			if !ok {
				return ast.Import{}, false
			}
			imp.Names = append(imp.Names, nameTok.Text)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		if _, ok := p.expect(token.RBrace, "'}'"); !ok {
			return ast.Import{}, false
		}
		imp.HasOnly = true
	}

	imp.Sp = imp.Sp.Cover(p.lastSpan)
	return imp, true
}

// parseModulePath parses a `'`-separated module path. External paths
// begin with a package-name segment; every segment after the first that
// addresses a file or directory must begin with a capital letter.
// Internal paths begin with a leading `'` and allow any-cased segments.
func (p *Parser) parseModulePath() (string, bool) {
	internal := false
	if p.at(token.Tick) {
		internal = true
		p.advance()
	}
	first, ok := p.expect(token.Ident, "a module path segment")
	if !ok {
		return "", false
	}
	path := first.Text
	for p.at(token.Tick) {
		p.advance()
		seg, ok := p.expect(token.Ident, "a module path segment")
		if !ok {
			return "", false
		}
		if !internal && !isCapitalized(seg.Text) {
			p.errorf(diag.ParsePrivateExternalModule, seg.Span,
				"external module path segment %q must begin with a capital letter", seg.Text)
		}
		path += "'" + seg.Text
	}
	return path, true
}

func isCapitalized(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c >= 'A' && c <= 'Z'
}
