package hir

import (
	"ember/internal/option"
	"ember/internal/source"
	"ember/internal/types"
)

// Stmt mirrors ast.Stmt but carries the optional type slot Let writes.
type Stmt struct {
	Bound bool
	Name  string
	Expr  Expr
	Type  option.Option[types.Type]
	Sp    source.Span
}
