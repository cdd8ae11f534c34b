package parser

import (
	"ember/internal/ast"
	"ember/internal/source"
	"ember/internal/token"
)

// parseIf dispatches among the four "if" forms by looking past the
// leading "if" for the shape that follows:
//
//	if cond { ... }                      -- plain if
//	if name = expr as Type { ... }       -- if-type (type narrowing)
//	if h, t = expr { ... }               -- if-list (head/tail destructure)
//	if name = expr[key] { ... }          -- if-map (key lookup)
func (p *Parser) parseIf() (ast.Expr, bool) {
	start := p.peek().Span
	p.advance() // 'if'

	if p.at(token.Ident) && p.peek2().Kind == token.Comma {
		return p.parseIfList(start)
	}
	if p.at(token.Ident) && p.peek2().Kind == token.Assign {
		return p.parseIfTypeOrMap(start)
	}
	return p.parsePlainIf(start)
}

func (p *Parser) parsePlainIf(start source.Span) (ast.Expr, bool) {
	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	els, ok := p.parseElseBlock()
	if !ok {
		return nil, false
	}
	return ast.NewIfExpr(start.Cover(p.lastSpan), cond, then, els), true
}

// parseIfList parses `if head, tail = list { then } else { else }`.
func (p *Parser) parseIfList(start source.Span) (ast.Expr, bool) {
	headTok := p.advance()
	p.advance() // ','
	tailTok, ok := p.expect(token.Ident, "an identifier")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Assign, "'='"); !ok {
		return nil, false
	}
	list, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	els, ok := p.parseElseBlock()
	if !ok {
		return nil, false
	}
	return ast.NewIfListExpr(start.Cover(p.lastSpan), headTok.Text, tailTok.Text, list, then, els), true
}

// parseIfTypeOrMap parses `if name = expr ...`. After the bound
// expression, an `as Type` tail commits to if-type; a `[key]` index
// commits to if-map.
func (p *Parser) parseIfTypeOrMap(start source.Span) (ast.Expr, bool) {
	nameTok := p.advance()
	p.advance() // '='
	scrutinee, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	// parseSuffix reads a trailing `as Type` as a coercion; on the bound
	// expression that coercion is the if-type's narrowing clause.
	if coerce, isCoerce := scrutinee.(ast.CoerceExpr); isCoerce {
		scrutinee = coerce.Operand
		ty := coerce.To
		body, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		branches := []ast.IfTypeBranch{{Name: nameTok.Text, Type: ty, Body: body, Sp: nameTok.Span.Cover(p.lastSpan)}}

		for p.at(token.KwElse) && p.peek2().Kind == token.KwIf {
			p.advance() // 'else'
			p.advance() // 'if'
			bNameTok, ok := p.expect(token.Ident, "an identifier")
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.Assign, "'='"); !ok {
				return nil, false
			}
			// Every branch must narrow the same scrutinee; the repeated
			// expression is parsed but discarded in favor of the first.
			bScrutinee, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			bCoerce, isCoerce := bScrutinee.(ast.CoerceExpr)
			if !isCoerce {
				p.expect(token.KwAs, "'as'")
				return nil, false
			}
			bTy := bCoerce.To
			bBody, ok := p.parseBlock()
			if !ok {
				return nil, false
			}
			branches = append(branches, ast.IfTypeBranch{Name: bNameTok.Text, Type: bTy, Body: bBody, Sp: bNameTok.Span.Cover(p.lastSpan)})
		}

		els, hasElse, ok := p.parseOptionalElseBlock()
		if !ok {
			return nil, false
		}
		return ast.NewIfTypeExpr(start.Cover(p.lastSpan), scrutinee, branches, els, hasElse), true
	}

	if _, ok := p.expect(token.LBracket, "'['"); !ok {
		return nil, false
	}
	key, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RBracket, "']'"); !ok {
		return nil, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	els, ok := p.parseElseBlock()
	if !ok {
		return nil, false
	}
	return ast.NewIfMapExpr(start.Cover(p.lastSpan), nameTok.Text, scrutinee, key, then, els), true
}

// parseElseBlock parses the mandatory `else { ... }` tail of a plain if,
// if-list, or if-map. Only if-type allows an absent else.
func (p *Parser) parseElseBlock() ([]ast.Stmt, bool) {
	if _, ok := p.expect(token.KwElse, "'else'"); !ok {
		return nil, false
	}
	return p.parseBlock()
}

func (p *Parser) parseOptionalElseBlock() ([]ast.Stmt, bool, bool) {
	if !p.at(token.KwElse) {
		return nil, false, true
	}
	p.advance()
	els, ok := p.parseBlock()
	if !ok {
		return nil, false, false
	}
	return els, true, true
}
