package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/token"
)

// parseListLiteralOrComprehension parses `[ElemType]{elements...}` or the
// comprehension form `[ElemType]{elem for name in source}` /
// `[ElemType]{elem for k, v in source}`. Both share the leading
// `[ElemType]{`; a "for" after the first element signals the
// comprehension, whose node does not keep ElemType.
func (p *Parser) parseListLiteralOrComprehension() (ast.Expr, bool) {
	start := p.peek().Span
	p.advance() // '['
	elemType, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RBracket, "']'"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, false
	}

	if p.at(token.RBrace) {
		p.advance()
		return ast.NewListLit(start.Cover(p.lastSpan), elemType, nil), true
	}

	// Try the comprehension form: an expression followed by "for".
	firstSpread := false
	if p.at(token.DotDotDot) {
		p.advance()
		firstSpread = true
	}
	first, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	if !firstSpread && p.at(token.KwFor) {
		p.advance()
		nameTok, ok := p.expect(token.Ident, "an identifier")
		if !ok {
			return nil, false
		}
		valueName := ""
		hasValue := false
		if p.at(token.Comma) {
			p.advance()
			valueTok, ok := p.expect(token.Ident, "an identifier")
			if !ok {
				return nil, false
			}
			valueName, hasValue = valueTok.Text, true
		}
		if _, ok := p.expect(token.KwIn, "'in'"); !ok {
			return nil, false
		}
		srcExpr, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RBrace, "'}'"); !ok {
			return nil, false
		}
		return ast.NewListComprehension(start.Cover(p.lastSpan), first, nameTok.Text, valueName, hasValue, srcExpr), true
	}

	elements := []ast.ListElement{{Expr: first, Spread: firstSpread}}
	for p.at(token.Comma) {
		p.advance()
		spread := false
		if p.at(token.DotDotDot) {
			p.advance()
			spread = true
		}
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		elements = append(elements, ast.ListElement{Expr: e, Spread: spread})
	}
	if _, ok := p.expect(token.RBrace, "'}'"); !ok {
		return nil, false
	}
	return ast.NewListLit(start.Cover(p.lastSpan), elemType, elements), true
}

// parseMapLiteral parses `{KeyType:ValueType}{entries...}`. Entries are
// `key: value`, `...spread`, or the v2-only removal form `key: value
// expr`, which is rejected under the v1-authoritative policy.
func (p *Parser) parseMapLiteral() (ast.Expr, bool) {
	start := p.peek().Span
	p.advance() // '{'
	keyType, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, "':'"); !ok {
		return nil, false
	}
	valueType, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RBrace, "'}'"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, false
	}

	var entries []ast.MapEntry
	for !p.at(token.RBrace) {
		if p.at(token.DotDotDot) {
			p.advance()
			e, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			entries = append(entries, ast.MapEntry{Value: e, Spread: true})
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		keyExpr, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, "':'"); !ok {
			return nil, false
		}
		valueExpr, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		entry := ast.MapEntry{Key: keyExpr, Value: valueExpr}
		if !p.atOr(token.Comma, token.RBrace) {
			// A third, bare expression after "key: value" is the v2-only
			// removal form `{k:v expr}`.
			removalExpr, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			p.errorf(diag.ParseV2OnlySyntax, removalExpr.Span(), "map-entry removal syntax is only accepted by the v2 grammar")
			entry.Removal = true
		}
		entries = append(entries, entry)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RBrace, "'}'"); !ok {
		return nil, false
	}
	return ast.NewMapLit(start.Cover(p.lastSpan), keyType, valueType, entries), true
}
