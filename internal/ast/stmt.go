package ast

import "ember/internal/source"

// Stmt is one entry of a block: `(ident "=")? expression`. The last Stmt
// of any block must have Bound == false; the parser enforces this since
// the surface grammar requires the block's value to be a bare expression.
type Stmt struct {
	Bound bool
	Name  string
	Expr  Expr
	Sp    source.Span
}
