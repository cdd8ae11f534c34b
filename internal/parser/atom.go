package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

// parseAtom parses the tightest-binding expression forms: literals,
// variables (possibly qualified), lambdas, record literals, if/if-type/
// if-list/if-map, list/map literals and comprehensions, `go` lambdas, and
// parenthesized groupings.
func (p *Parser) parseAtom() (ast.Expr, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.KwTrue:
		p.advance()
		return ast.NewBoolLit(tok.Span, true), true
	case token.KwFalse:
		p.advance()
		return ast.NewBoolLit(tok.Span, false), true
	case token.KwNone:
		p.advance()
		return ast.NewNoneLit(tok.Span), true
	case token.NumberLit:
		p.advance()
		return ast.NewNumberLit(tok.Span, tok.Text), true
	case token.StringLit:
		p.advance()
		return ast.NewStringLit(tok.Span, tok.Text), true
	case token.BackslashLParen:
		lambda, ok := p.parseLambda()
		if !ok {
			return nil, false
		}
		return lambda, true
	case token.KwGo:
		p.advance()
		lambda, ok := p.parseLambda()
		if !ok {
			return nil, false
		}
		return ast.NewGoExpr(tok.Span.Cover(p.lastSpan), lambda), true
	case token.KwIf:
		return p.parseIf()
	case token.LBracket:
		return p.parseListLiteralOrComprehension()
	case token.LBrace:
		return p.parseMapLiteral()
	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, "')'"); !ok {
			return nil, false
		}
		return inner, true
	case token.Ident:
		return p.parseIdentOrRecordLit()
	default:
		p.errorf(diag.ParseUnexpectedToken, tok.Span, "expected an expression, found %q", tok.Text)
		return nil, false
	}
}

// parseIdentOrRecordLit parses a (possibly qualified) variable, or a
// record literal when the identifier is immediately followed by "{" with
// no intervening trivia.
func (p *Parser) parseIdentOrRecordLit() (ast.Expr, bool) {
	nameTok := p.advance()
	name := nameTok.Text
	for p.at(token.Tick) {
		p.advance()
		seg, ok := p.expect(token.Ident, "a qualified-name segment")
		if !ok {
			return nil, false
		}
		name += "'" + seg.Text
	}

	if p.at(token.LBrace) && p.peek().Glued {
		return p.parseRecordLitBody(nameTok.Span, name)
	}
	return ast.NewVar(nameTok.Span.Cover(p.lastSpan), name), true
}

// parseRecordLitBody parses the `{...spread, name: expr, ...}` body of a
// record literal already committed to by the caller.
func (p *Parser) parseRecordLitBody(start source.Span, typeName string) (ast.Expr, bool) {
	p.advance() // '{'
	var spread ast.Expr
	var fields []ast.RecordFieldInit
	seen := map[string]bool{}

	for !p.at(token.RBrace) {
		if p.at(token.DotDotDot) {
			p.advance()
			e, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			spread = e
		} else {
			fieldTok, ok := p.expect(token.Ident, "a field name")
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.Colon, "':'"); !ok {
				return nil, false
			}
			e, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			if seen[fieldTok.Text] {
				p.errorf(diag.ParseDuplicateRecordField, fieldTok.Span, "duplicate record field %q", fieldTok.Text)
			}
			seen[fieldTok.Text] = true
			fields = append(fields, ast.RecordFieldInit{Name: fieldTok.Text, Expr: e, Sp: fieldTok.Span.Cover(p.lastSpan)})
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RBrace, "'}'"); !ok {
		return nil, false
	}
	if spread != nil && len(fields) == 0 {
		p.errorf(diag.ParseEmptySpreadRecord, start.Cover(p.lastSpan), "expected at least one field after spread")
		return nil, false
	}
	return ast.NewRecordLit(start.Cover(p.lastSpan), typeName, spread, fields), true
}
