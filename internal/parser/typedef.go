package parser

import (
	"ember/internal/ast"
	"ember/internal/token"
	"ember/internal/types"
)

// parseTypeDef parses `type Name { (ident type)* }` (a record) or
// `type Name = type` (an alias).
func (p *Parser) parseTypeDef() (ast.TypeDef, bool) {
	start, ok := p.expect(token.KwType, "'type'")
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expect(token.Ident, "an identifier")
	if !ok {
		return nil, false
	}

	if p.at(token.Assign) {
		p.advance()
		target, ok := p.parseType()
		if !ok {
			return nil, false
		}
		return ast.AliasDef{Name: nameTok.Text, Target: target, Sp: start.Span.Cover(p.lastSpan)}, true
	}

	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, false
	}
	var fields []types.Field
	for !p.at(token.RBrace) {
		fieldName, ok := p.expect(token.Ident, "a field name")
		if !ok {
			return nil, false
		}
		fieldType, ok := p.parseType()
		if !ok {
			return nil, false
		}
		fields = append(fields, types.Field{Name: fieldName.Text, Type: fieldType})
	}
	if _, ok := p.expect(token.RBrace, "'}'"); !ok {
		return nil, false
	}
	return ast.RecordDef{Name: nameTok.Text, Fields: fields, Sp: start.Span.Cover(p.lastSpan)}, true
}
