package mir

import "ember/internal/source"

// Expr is any MIR expression node. Unlike ast/hir, MIR is produced only by
// the lowerer, so there is no cross-package construction problem to guard
// against: every field is exported and node literals are built directly.
type Expr interface {
	Span() source.Span
	exprNode()
}

type exprBase struct{ Sp source.Span }

func (e exprBase) Span() source.Span { return e.Sp }
func (exprBase) exprNode()           {}

type BoolLit struct {
	exprBase
	Value bool
}

type NumberLit struct {
	exprBase
	Text string
}

type StringLit struct {
	exprBase
	Value string
}

type NoneLit struct{ exprBase }

// Variable references a name bound by a Let, LetRecursive, or an enclosing
// Definition's argument list.
type Variable struct {
	exprBase
	Name string
}

// Let binds Name : Type to Value for the evaluation of Body.
type Let struct {
	exprBase
	Name  string
	Type  Type
	Value Expr
	Body  Expr
}

// Argument is one parameter of a Definition.
type Argument struct {
	Name string
	Type Type
}

// Definition is a (possibly recursive, via LetRecursive) function body.
// IsThunk marks a zero-argument definition produced by lowering a `go` or
// `thunk` expression: the runtime evaluates it at most once and caches the
// result, rather than re-running the body on every force.
type Definition struct {
	Name    string
	Params  []Argument
	Body    Expr
	Result  Type
	IsThunk bool
}

// LetRecursive binds Def's own name within Def.Body (enabling direct and
// mutual recursion through closures) and then evaluates Body under that
// binding. Every lambda value and every thunk/spawn body lowers through
// this node; module-level functions are the exception and lower to a
// plain Definition (lowerTopLevel).
type LetRecursive struct {
	exprBase
	Def  Definition
	Body Expr
}

// Call invokes Callee, already known (from the inference slot) to have
// FunctionType.
type Call struct {
	exprBase
	FunctionType Type
	Callee       Expr
	Args         []Expr
}

type If struct {
	exprBase
	Cond, Then, Else Expr
}

type ArithmeticOp uint8

const (
	ArithAdd ArithmeticOp = iota
	ArithSub
	ArithMul
	ArithDiv
	ArithMod
)

type ArithmeticOperation struct {
	exprBase
	Op          ArithmeticOp
	Left, Right Expr
}

type ComparisonOp uint8

const (
	CmpEqual ComparisonOp = iota
	CmpLess
	CmpLessEqual
	CmpGreater
	CmpGreaterEqual
)

type ComparisonOperation struct {
	exprBase
	Op          ComparisonOp
	Left, Right Expr
}

// RecordExpr constructs a value of Type from Fields, already compiled and
// in the record definition's declared order.
type RecordExpr struct {
	exprBase
	Type   Type
	Fields []Expr
}

// RecordField reads the field at Index (declaration order) out of Record.
type RecordField struct {
	exprBase
	Type   Type
	Index  int
	Record Expr
}

// Variant tags Value, whose static type is Type, so it can travel as a
// union member. Type is always a primitive, a nominal record, or one of
// the synthetic concrete wrapper records.
type Variant struct {
	exprBase
	Type  Type
	Value Expr
}

// Alternative handles one union member of a Case: the runtime dispatches
// on Type's tag, binds Name to the tagged payload (re-wrapped as a variant
// if the branch's declared type is itself a union -- see
// compileAlternatives/genericAlternative in the lowerer), and evaluates Body.
type Alternative struct {
	Type Type
	Name string
	Body Expr
}

// DefaultAlternative is the `any`-covering else branch of an if-type: Name
// binds the untagged variant value itself.
type DefaultAlternative struct {
	Name string
	Body Expr
}

// Case dispatches Value, a variant, across Alternatives by runtime tag,
// falling to Default (if present) for any tag none of Alternatives names.
type Case struct {
	exprBase
	Value        Expr
	Alternatives []Alternative
	Default      *DefaultAlternative
}

// TryOperation is the try-operator's propagation primitive: the runtime
// evaluates Operand; if the result is tagged ErrorType, it binds ErrorName
// to the untagged payload, evaluates Propagate, and returns its value
// directly from the *enclosing function* (short-circuiting every
// surrounding Case/Let); otherwise it yields Operand's untagged success
// payload to whatever Case wraps this node.
type TryOperation struct {
	exprBase
	Operand   Expr
	ErrorName string
	ErrorType Type
	Propagate Expr
}
