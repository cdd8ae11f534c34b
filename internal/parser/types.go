package parser

import (
	"ember/internal/diag"
	"ember/internal/token"
	"ember/internal/types"
)

// parseType parses a surface type at union precedence (the loosest level):
//
//	type   := unionType
//	unionType := postfixType ("|" unionType)?     -- right-associative
//	postfixType := "boolean" | "none" | "number" | "string" | "any"
//	            | ident | "[" type "]" | "{" type ":" type "}"
//	            | "\(" type-list ")" type | "(" type ")"
func (p *Parser) parseType() (types.Type, bool) {
	lhs, ok := p.parsePostfixType()
	if !ok {
		return types.Type{}, false
	}
	if p.at(token.Pipe) {
		p.advance()
		rhs, ok := p.parseType()
		if !ok {
			return types.Type{}, false
		}
		return types.Union(lhs, rhs), true
	}
	return lhs, true
}

func (p *Parser) parsePostfixType() (types.Type, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.KwBoolean:
		p.advance()
		return types.Boolean(), true
	case token.KwNone:
		p.advance()
		return types.None(), true
	case token.KwNumber:
		p.advance()
		return types.Number(), true
	case token.KwString:
		p.advance()
		return types.String(), true
	case token.KwAny:
		p.advance()
		return types.Any(), true
	case token.Ident:
		p.advance()
		return types.Reference(tok.Text), true
	case token.LBracket:
		p.advance()
		elem, ok := p.parseType()
		if !ok {
			return types.Type{}, false
		}
		if _, ok := p.expect(token.RBracket, "']'"); !ok {
			return types.Type{}, false
		}
		return types.List(elem), true
	case token.LBrace:
		p.advance()
		key, ok := p.parseType()
		if !ok {
			return types.Type{}, false
		}
		if _, ok := p.expect(token.Colon, "':'"); !ok {
			return types.Type{}, false
		}
		value, ok := p.parseType()
		if !ok {
			return types.Type{}, false
		}
		if _, ok := p.expect(token.RBrace, "'}'"); !ok {
			return types.Type{}, false
		}
		return types.Map(key, value), true
	case token.BackslashLParen:
		return p.parseFunctionType()
	case token.LParen:
		p.advance()
		inner, ok := p.parseType()
		if !ok {
			return types.Type{}, false
		}
		if _, ok := p.expect(token.RParen, "')'"); !ok {
			return types.Type{}, false
		}
		return inner, true
	default:
		p.errorf(diag.ParseUnexpectedToken, tok.Span, "expected a type, found %q", tok.Text)
		return types.Type{}, false
	}
}

func (p *Parser) parseFunctionType() (types.Type, bool) {
	p.advance() // consume \(
	var params []types.Type
	for !p.at(token.RParen) {
		t, ok := p.parseType()
		if !ok {
			return types.Type{}, false
		}
		params = append(params, t)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RParen, "')'"); !ok {
		return types.Type{}, false
	}
	result, ok := p.parseType()
	if !ok {
		return types.Type{}, false
	}
	return types.Function(params, result), true
}
