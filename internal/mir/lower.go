package mir

import (
	"ember/internal/hir"
	"ember/internal/types"
)

// Lowerer translates a checked hir.Module into mir.Module. It assumes the
// tree already passed internal/sema: every call it can't resolve (a
// missing FunctionType slot, an unknown record) is treated as an internal
// inconsistency rather than a user-facing diagnostic, and reported through
// the same diag.Code the checker would have used for the equivalent
// obligation (see errors.go).
type Lowerer struct {
	env *types.Env
}

func New(env *types.Env) *Lowerer { return &Lowerer{env: env} }

// FunctionDef is one lowered module-level function. Top-level functions do
// not go through the closure-wrapping LetRecursive form every other
// lambda value does: they already have a permanent, module-global name,
// so there is nothing for a local recursive binding to add. A lambda that
// appears as a *value* inside a body (spawn's argument, an anonymous
// lambda passed around) lowers through lowerLambdaValue instead.
type FunctionDef struct {
	Name     string
	Exported bool
	Def      Definition
}

type Module struct {
	Path      string
	Functions []FunctionDef
}

func lambdaType(l *hir.Lambda) types.Type {
	params := make([]types.Type, len(l.Params))
	for i, p := range l.Params {
		params[i] = p.Type
	}
	return types.Function(params, l.Result)
}

// LowerModule lowers every function in mod. signatures supplies the
// declared type of every name a body may call but mod does not itself
// define, mirroring internal/infer.InferModule's contract.
func (lw *Lowerer) LowerModule(mod *hir.Module, signatures map[string]types.Type) (*Module, error) {
	root := newScope(nil)
	for name, t := range signatures {
		root.bind(name, t)
	}
	for _, fn := range mod.Functions {
		root.bind(fn.Name, lambdaType(&fn.Lambda))
	}

	out := &Module{Path: mod.Path}
	for _, fn := range mod.Functions {
		def, err := lw.lowerTopLevel(root, &fn.Lambda, fn.Name)
		if err != nil {
			return nil, err
		}
		out.Functions = append(out.Functions, FunctionDef{Name: fn.Name, Exported: fn.Exported, Def: def})
	}
	return out, nil
}

func (lw *Lowerer) lowerTopLevel(parent *scope, l *hir.Lambda, name string) (Definition, error) {
	sc := newScope(parent)
	params := make([]Argument, len(l.Params))
	for i, p := range l.Params {
		sc.bind(p.Name, p.Type)
		pt, err := compileType(lw.env, p.Type, l.Span())
		if err != nil {
			return Definition{}, err
		}
		params[i] = Argument{Name: p.Name, Type: pt}
	}
	body, err := lw.lowerBlock(sc, l.Body)
	if err != nil {
		return Definition{}, err
	}
	result, err := compileType(lw.env, l.Result, l.Span())
	if err != nil {
		return Definition{}, err
	}
	return Definition{Name: name, Params: params, Body: body, Result: result}, nil
}

const closureName = "$closure"
const discardName = "$_"

// lowerLambdaValue lowers a lambda appearing as a first-class value (spawn
// operand, an inline lambda passed as an argument) to the closure form
// §4.6 names: `let-recursive $closure = def(args…) body in $closure`.
func (lw *Lowerer) lowerLambdaValue(sc *scope, l *hir.Lambda) (LetRecursive, error) {
	def, err := lw.lowerTopLevel(sc, l, closureName)
	if err != nil {
		return LetRecursive{}, err
	}
	sp := l.Span()
	return LetRecursive{exprBase: exprBase{sp}, Def: def, Body: Variable{exprBase{sp}, closureName}}, nil
}

// lowerBlock compiles a statement list to a single expression: Bound
// statements become nested Lets; the final (always-unbound, per the
// grammar) statement's expression is the block's value. A non-last
// unbound statement still needs sequencing for its side effect, so it
// binds to the unused name discardName rather than being dropped.
func (lw *Lowerer) lowerBlock(sc *scope, stmts []hir.Stmt) (Expr, error) {
	if len(stmts) == 0 {
		return NoneLit{}, nil
	}
	if len(stmts) == 1 {
		return lw.lowerExpr(sc, stmts[0].Expr)
	}
	s := stmts[0]
	value, err := lw.lowerExpr(sc, s.Expr)
	if err != nil {
		return nil, err
	}
	bindType := lw.typeOf(sc, s.Expr)
	if s.Bound {
		if t, ok := s.Type.Get(); ok {
			bindType = t
		}
	}
	mt, err := compileType(lw.env, bindType, s.Sp)
	if err != nil {
		return nil, err
	}
	name := discardName
	next := sc
	if s.Bound {
		name = s.Name
		next = newScope(sc)
		next.bind(s.Name, bindType)
	}
	rest, err := lw.lowerBlock(next, stmts[1:])
	if err != nil {
		return nil, err
	}
	return Let{exprBase{s.Sp}, name, mt, value, rest}, nil
}

// typeOf re-derives a subexpression's surface type. It mirrors
// internal/sema's typeOf/checkXxx traversal but performs no obligation
// checking: by the time lowering runs, internal/sema has already accepted
// the tree, so every subsumption this would otherwise verify is assumed to
// hold.
func (lw *Lowerer) typeOf(sc *scope, e hir.Expr) types.Type {
	switch n := e.(type) {
	case hir.BoolLit:
		return types.Boolean()
	case hir.NumberLit:
		return types.Number()
	case hir.StringLit:
		return types.String()
	case hir.NoneLit:
		return types.None()
	case hir.Var:
		if t, ok := sc.lookup(n.Name); ok {
			return t
		}
		return types.Any()
	case *hir.Lambda:
		return lambdaType(n)
	case hir.Call:
		if ft, ok := n.FunctionType.Get(); ok {
			return *ft.Result
		}
		return types.Any()
	case hir.FieldAccess:
		recvT := lw.typeOf(sc, n.Recv)
		fields, err := types.ResolveRecordFields(lw.env, recvT, n.Span())
		if err != nil {
			return types.Any()
		}
		idx := types.FieldIndex(fields, n.Name)
		if idx < 0 {
			return types.Any()
		}
		return fields[idx].Type
	case hir.UnaryExpr:
		return types.Boolean()
	case hir.BinaryExpr:
		switch n.Op {
		case hir.Or, hir.And, hir.Lt, hir.LtEq, hir.Gt, hir.GtEq:
			return types.Boolean()
		default:
			return types.Number()
		}
	case hir.EqualityExpr:
		return types.Boolean()
	case hir.RecordLit:
		return types.Record(n.TypeName)
	case hir.IfExpr:
		thenT := lw.typeOf(sc, tailExpr(n.Then))
		elseT := lw.typeOf(sc, tailExpr(n.Else))
		if lub, err := types.LUB(lw.env, thenT, elseT, n.Span()); err == nil {
			return lub
		}
		return thenT
	case hir.IfTypeExpr:
		return lw.typeOfIfType(sc, n)
	case hir.IfListExpr:
		elem, ok := n.ElementType.Get()
		if !ok {
			elem = types.Any()
		}
		bsc := newScope(sc)
		bsc.bind(n.HeadName, types.Function(nil, elem))
		bsc.bind(n.TailName, types.List(elem))
		thenT := lw.typeOf(bsc, tailExpr(n.Then))
		elseT := lw.typeOf(sc, tailExpr(n.Else))
		if lub, err := types.LUB(lw.env, thenT, elseT, n.Span()); err == nil {
			return lub
		}
		return thenT
	case hir.IfMapExpr:
		valueT, ok := n.ValueType.Get()
		if !ok {
			valueT = types.Any()
		}
		bsc := newScope(sc)
		bsc.bind(n.Name, valueT)
		thenT := lw.typeOf(bsc, tailExpr(n.Then))
		elseT := lw.typeOf(sc, tailExpr(n.Else))
		if lub, err := types.LUB(lw.env, thenT, elseT, n.Span()); err == nil {
			return lub
		}
		return thenT
	case hir.ListLit:
		return types.List(n.ElemType)
	case hir.MapLit:
		return types.Map(n.KeyType, n.ValueType)
	case hir.ListComprehension:
		elemT := lw.comprehensionElemType(sc, n)
		return types.List(elemT)
	case hir.Thunk:
		return lw.typeOf(sc, n.Inner)
	case hir.TryExpr:
		if t, ok := n.Type.Get(); ok {
			return t
		}
		return types.Any()
	case hir.SpawnExpr:
		return n.Lambda.Result
	case hir.CoerceExpr:
		return n.ToDecl
	default:
		return types.Any()
	}
}

func (lw *Lowerer) typeOfIfType(sc *scope, n hir.IfTypeExpr) types.Type {
	var results []types.Type
	for _, b := range n.Branches {
		bsc := newScope(sc)
		bsc.bind(b.Name, b.Type)
		results = append(results, lw.typeOf(bsc, tailExpr(b.Body)))
	}
	if n.HasElse {
		results = append(results, lw.typeOf(sc, tailExpr(n.Else)))
	}
	if len(results) == 0 {
		return types.None()
	}
	out := results[0]
	for _, t := range results[1:] {
		if lub, err := types.LUB(lw.env, out, t, n.Span()); err == nil {
			out = lub
		}
	}
	return out
}

func (lw *Lowerer) comprehensionElemType(sc *scope, n hir.ListComprehension) types.Type {
	canon, ok := n.InputType.Get()
	if !ok {
		canon = types.Any()
	}
	bsc := newScope(sc)
	switch canon.Kind {
	case types.KList:
		bsc.bind(n.ValueName, *canon.Elem)
	case types.KMap:
		if n.HasKey {
			bsc.bind(n.KeyName, *canon.Key)
		}
		bsc.bind(n.ValueName, *canon.Value)
	}
	return lw.typeOf(bsc, n.Elem)
}

func tailExpr(stmts []hir.Stmt) hir.Expr {
	if len(stmts) == 0 {
		return hir.NoneLit{}
	}
	return stmts[len(stmts)-1].Expr
}
