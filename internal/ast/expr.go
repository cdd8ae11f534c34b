// Package ast defines the concrete surface tree the parser produces: every
// node carries the source span it was parsed from, and nothing else is
// resolved or inferred yet.
package ast

import (
	"ember/internal/source"
	"ember/internal/types"
)

// Expr is any surface expression node.
type Expr interface {
	Span() source.Span
	exprNode()
}

type exprBase struct{ Sp source.Span }

func (e exprBase) Span() source.Span { return e.Sp }
func (exprBase) exprNode()           {}

func base(sp source.Span) exprBase { return exprBase{Sp: sp} }

// BoolLit is `true` or `false`.
type BoolLit struct {
	exprBase
	Value bool
}

// NumberLit keeps the literal text verbatim; decimal/binary/hex parsing is
// the lowerer's concern, not the parser's.
type NumberLit struct {
	exprBase
	Text string
}

// StringLit holds the already-unescaped string value.
type StringLit struct {
	exprBase
	Value string
}

// NoneLit is the `none` literal.
type NoneLit struct{ exprBase }

// Var is a bare identifier reference, possibly qualified (`prefix'name`).
type Var struct {
	exprBase
	Name string
}

// Param is one lambda argument: a name and its declared type.
type Param struct {
	Name string
	Type types.Type
	Sp   source.Span
}

// Lambda is `\(params) result { body }`.
type Lambda struct {
	exprBase
	Params []Param
	Result types.Type
	Body   []Stmt
}

// Call is `callee(args...)`, requiring no whitespace between callee and `(`.
type Call struct {
	exprBase
	Callee Expr
	Args   []Expr
}

// FieldAccess is `recv.name`.
type FieldAccess struct {
	exprBase
	Recv Expr
	Name string
}

// UnaryOp enumerates prefix operators.
type UnaryOp uint8

const (
	UnaryNot UnaryOp = iota
)

// UnaryExpr is a prefix operator application.
type UnaryExpr struct {
	exprBase
	Op      UnaryOp
	Operand Expr
}

// BinaryOp enumerates infix operators, by precedence level (spec §4.1):
// level 1 Or, level 2 And, level 3 comparisons, level 4 Add/Sub, level 5
// Mul/Div.
type BinaryOp uint8

const (
	Or BinaryOp = iota
	And
	Eq
	NotEq
	Lt
	LtEq
	Gt
	GtEq
	Add
	Sub
	Mul
	Div
	Mod
)

// Precedence returns the binding level; lower binds looser.
func (op BinaryOp) Precedence() int {
	switch op {
	case Or:
		return 1
	case And:
		return 2
	case Eq, NotEq, Lt, LtEq, Gt, GtEq:
		return 3
	case Add, Sub:
		return 4
	case Mul, Div, Mod:
		return 5
	default:
		return 0
	}
}

// BinaryExpr is an infix operator application, already precedence-reduced
// from the parser's flat suffix/operator list.
type BinaryExpr struct {
	exprBase
	Op          BinaryOp
	Left, Right Expr
}

// RecordFieldInit is one `name: expr` entry of a record literal.
type RecordFieldInit struct {
	Name string
	Expr Expr
	Sp   source.Span
}

// RecordLit is `Name{...spread, field: expr, ...}`. Spread == nil means a
// plain construction; Spread != nil means an update of that base value.
type RecordLit struct {
	exprBase
	TypeName string
	Spread   Expr
	Fields   []RecordFieldInit
}

// IfExpr is the ordinary `if cond { then } else { else }` value form. Else
// is mandatory in source; there is no implicit-none arm.
type IfExpr struct {
	exprBase
	Cond Expr
	Then []Stmt
	Else []Stmt
}

// IfTypeBranch is one `name = scrutinee as Type { body }` arm.
type IfTypeBranch struct {
	Name string
	Type types.Type
	Body []Stmt
	Sp   source.Span
}

// IfTypeExpr narrows a union-typed scrutinee by runtime type tag:
//
//	if y = x as number { ... } else if y = x as string { ... } else { ... }
//
// Every branch re-evaluates the same scrutinee expression syntactically
// (the desugarer is free to bind it once); only the first branch's
// scrutinee expression is stored, since every branch must name the same
// one for the construct to make sense.
type IfTypeExpr struct {
	exprBase
	Scrutinee Expr
	Branches  []IfTypeBranch
	Else      []Stmt
	HasElse   bool
}

// IfListExpr destructures a list scrutinee into a lazy head and a tail.
// Else is mandatory:
//
//	if h, t = xs { ... } else { ... }
type IfListExpr struct {
	exprBase
	HeadName string
	TailName string
	List     Expr
	Then     []Stmt
	Else     []Stmt
}

// IfMapExpr looks up a key in a map scrutinee. Else is mandatory:
//
//	if v = m[k] { ... } else { ... }
type IfMapExpr struct {
	exprBase
	Name string
	Map  Expr
	Key  Expr
	Then []Stmt
	Else []Stmt
}

// ListElement is one entry of a list literal; Spread marks `...expr`.
type ListElement struct {
	Expr   Expr
	Spread bool
}

// ListLit is `[T]{elements...}`; the element type is mandatory in source.
type ListLit struct {
	exprBase
	ElemType types.Type
	Elements []ListElement
}

// MapEntry is one entry of a map literal. Removal marks the `{k:v expr}`
// v2-only removal form, rejected by the parser per the v1-authoritative
// policy; it is kept on the node only so the parser can report
// ParseV2OnlySyntax with full context.
type MapEntry struct {
	Key     Expr
	Value   Expr
	Spread  bool
	Removal bool
}

// MapLit is `{K:V}{entries...}`.
type MapLit struct {
	exprBase
	KeyType   types.Type
	ValueType types.Type
	Entries   []MapEntry
}

// ListComprehension is `[T]{expr for name in source}` or, with a bound
// value name, `[T]{expr for key, value in source}` (the latter only valid
// when source is a map); the leading `[T]` is not kept on the node. Both forms share one node rather than a distinct
// map-iteration node.
type ListComprehension struct {
	exprBase
	Elem      Expr
	Name      string
	ValueName string
	HasValue  bool
	Source    Expr
}

// GoExpr is `go lambda`, spawning the lambda as a task.
type GoExpr struct {
	exprBase
	Lambda *Lambda
}

// TryExpr is `operand?`.
type TryExpr struct {
	exprBase
	Operand Expr
}

// CoerceExpr is an explicit `operand as Type` coercion. (The parser also
// reads an if-type's `name = expr as Type` through this node, then moves
// Operand into the IfTypeExpr scrutinee and To into the IfTypeBranch, so a
// CoerceExpr left in the tree is always a standalone coercion.)
type CoerceExpr struct {
	exprBase
	Operand Expr
	To      types.Type
}

// Constructors. The parser builds every node through these rather than
// composite literals, since exprBase's field is unexported.

func NewBoolLit(sp source.Span, v bool) BoolLit       { return BoolLit{base(sp), v} }
func NewNumberLit(sp source.Span, text string) NumberLit { return NumberLit{base(sp), text} }
func NewStringLit(sp source.Span, v string) StringLit { return StringLit{base(sp), v} }
func NewNoneLit(sp source.Span) NoneLit               { return NoneLit{base(sp)} }
func NewVar(sp source.Span, name string) Var          { return Var{base(sp), name} }

func NewLambda(sp source.Span, params []Param, result types.Type, body []Stmt) *Lambda {
	return &Lambda{exprBase: base(sp), Params: params, Result: result, Body: body}
}

func NewCall(sp source.Span, callee Expr, args []Expr) Call {
	return Call{base(sp), callee, args}
}

func NewFieldAccess(sp source.Span, recv Expr, name string) FieldAccess {
	return FieldAccess{base(sp), recv, name}
}

func NewUnary(sp source.Span, op UnaryOp, operand Expr) UnaryExpr {
	return UnaryExpr{base(sp), op, operand}
}

func NewBinary(sp source.Span, op BinaryOp, lhs, rhs Expr) BinaryExpr {
	return BinaryExpr{base(sp), op, lhs, rhs}
}

func NewRecordLit(sp source.Span, typeName string, spread Expr, fields []RecordFieldInit) RecordLit {
	return RecordLit{base(sp), typeName, spread, fields}
}

func NewIfExpr(sp source.Span, cond Expr, then, els []Stmt) IfExpr {
	return IfExpr{base(sp), cond, then, els}
}

func NewIfTypeExpr(sp source.Span, scrutinee Expr, branches []IfTypeBranch, els []Stmt, hasElse bool) IfTypeExpr {
	return IfTypeExpr{base(sp), scrutinee, branches, els, hasElse}
}

func NewIfListExpr(sp source.Span, head, tail string, list Expr, then, els []Stmt) IfListExpr {
	return IfListExpr{base(sp), head, tail, list, then, els}
}

func NewIfMapExpr(sp source.Span, name string, m, key Expr, then, els []Stmt) IfMapExpr {
	return IfMapExpr{base(sp), name, m, key, then, els}
}

func NewListLit(sp source.Span, elemType types.Type, elements []ListElement) ListLit {
	return ListLit{base(sp), elemType, elements}
}

func NewMapLit(sp source.Span, keyType, valueType types.Type, entries []MapEntry) MapLit {
	return MapLit{base(sp), keyType, valueType, entries}
}

func NewListComprehension(sp source.Span, elem Expr, name, valueName string, hasValue bool, source_ Expr) ListComprehension {
	return ListComprehension{base(sp), elem, name, valueName, hasValue, source_}
}

func NewGoExpr(sp source.Span, lambda *Lambda) GoExpr { return GoExpr{base(sp), lambda} }

func NewTryExpr(sp source.Span, operand Expr) TryExpr { return TryExpr{base(sp), operand} }

func NewCoerceExpr(sp source.Span, operand Expr, to types.Type) CoerceExpr {
	return CoerceExpr{base(sp), operand, to}
}
