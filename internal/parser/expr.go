package parser

import (
	"ember/internal/ast"
	"ember/internal/token"
)

// parseExpr parses a full expression at the loosest (union, precedence 1)
// binary level.
func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseBinary(1)
}

var binOpByToken = map[token.Kind]ast.BinaryOp{
	token.Pipe:    ast.Or,
	token.Amp:     ast.And,
	token.EqEq:    ast.Eq,
	token.NotEq:   ast.NotEq,
	token.Lt:      ast.Lt,
	token.LtEq:    ast.LtEq,
	token.Gt:      ast.Gt,
	token.GtEq:    ast.GtEq,
	token.Plus:    ast.Add,
	token.Minus:   ast.Sub,
	token.Star:    ast.Mul,
	token.Slash:   ast.Div,
	token.Percent: ast.Mod,
}

// parseBinary implements precedence climbing over the five operator
// levels: level 1 "|", level 2 "&", level 3 comparisons, level 4 "+"/"-",
// level 5 "*"/"/"/"%". Within a level, operators are left-associative.
func (p *Parser) parseBinary(minPrec int) (ast.Expr, bool) {
	lhs, ok := p.parsePrefix()
	if !ok {
		return nil, false
	}
	for {
		op, isOp := binOpByToken[p.peek().Kind]
		if !isOp || op.Precedence() < minPrec {
			return lhs, true
		}
		p.advance()
		rhs, ok := p.parseBinary(op.Precedence() + 1)
		if !ok {
			return nil, false
		}
		lhs = ast.NewBinary(lhs.Span().Cover(rhs.Span()), op, lhs, rhs)
	}
}

// parsePrefix handles the "!" prefix operator; "!" may stack.
func (p *Parser) parsePrefix() (ast.Expr, bool) {
	if p.at(token.Bang) {
		start := p.advance()
		operand, ok := p.parsePrefix()
		if !ok {
			return nil, false
		}
		return ast.NewUnary(start.Span.Cover(operand.Span()), ast.UnaryNot, operand), true
	}
	return p.parseSuffix()
}

// parseSuffix handles call, field access, coercion and try (`?`) suffixes,
// all of which bind tighter than any binary operator and chain left to
// right: `f(x).y as number?`.
func (p *Parser) parseSuffix() (ast.Expr, bool) {
	expr, ok := p.parseAtom()
	if !ok {
		return nil, false
	}
	for {
		switch {
		case p.at(token.LParen) && p.peek().Glued:
			p.advance()
			var args []ast.Expr
			for !p.at(token.RParen) {
				arg, ok := p.parseExpr()
				if !ok {
					return nil, false
				}
				args = append(args, arg)
				if p.at(token.Comma) {
					p.advance()
					continue
				}
				break
			}
			if _, ok := p.expect(token.RParen, "')'"); !ok {
				return nil, false
			}
			expr = ast.NewCall(expr.Span().Cover(p.lastSpan), expr, args)
		case p.at(token.Dot):
			p.advance()
			nameTok, ok := p.expect(token.Ident, "a field name")
			if !ok {
				return nil, false
			}
			expr = ast.NewFieldAccess(expr.Span().Cover(nameTok.Span), expr, nameTok.Text)
		case p.at(token.KwAs):
			p.advance()
			ty, ok := p.parseType()
			if !ok {
				return nil, false
			}
			expr = ast.NewCoerceExpr(expr.Span().Cover(p.lastSpan), expr, ty)
		case p.at(token.Question):
			p.advance()
			expr = ast.NewTryExpr(expr.Span().Cover(p.lastSpan), expr)
		default:
			return expr, true
		}
	}
}
