// Package infer fills the optional type slots hir.Desugar leaves empty.
// It is a single bottom-up pass: each expression both computes its own
// type and writes the slots the checker (internal/sema) later verifies.
// Function signatures are never inferred, only declared types read back.
package infer

import (
	"fmt"

	"ember/internal/errors"
	"ember/internal/hir"
	"ember/internal/option"
	"ember/internal/types"
)

// Inferrer fills type slots against a shared record/alias environment.
type Inferrer struct {
	env *types.Env
}

func New(env *types.Env) *Inferrer { return &Inferrer{env: env} }

func lambdaType(l *hir.Lambda) types.Type {
	params := make([]types.Type, len(l.Params))
	for i, p := range l.Params {
		params[i] = p.Type
	}
	return types.Function(params, l.Result)
}

// InferModule infers every function body in mod. signatures supplies the
// declared type of every externally-visible function this module's bodies
// may call (its own exports plus anything resolved from imports); it is
// merged with the module's own function signatures before inference.
func (inf *Inferrer) InferModule(mod *hir.Module, signatures map[string]types.Type) (*hir.Module, error) {
	root := newScope(nil)
	for name, t := range signatures {
		root.bind(name, t)
	}
	for _, fn := range mod.Functions {
		root.bind(fn.Name, lambdaType(&fn.Lambda))
	}

	out := &hir.Module{Path: mod.Path}
	for _, fn := range mod.Functions {
		lambda, _, err := inf.inferLambda(root, &fn.Lambda)
		if err != nil {
			return nil, err
		}
		out.Functions = append(out.Functions, hir.FunctionDef{
			Name:          fn.Name,
			Exported:      fn.Exported,
			Lambda:        *lambda,
			ForeignExport: fn.ForeignExport,
			ForeignConv:   fn.ForeignConv,
		})
	}
	return out, nil
}

func (inf *Inferrer) inferLambda(parent *scope, l *hir.Lambda) (*hir.Lambda, types.Type, error) {
	sc := newScope(parent)
	for _, p := range l.Params {
		sc.bind(p.Name, p.Type)
	}
	body, _, err := inf.inferBlock(sc, l.Body)
	if err != nil {
		return nil, types.Type{}, err
	}
	out := *l
	out.Body = body
	return &out, lambdaType(l), nil
}

// inferBlock infers every statement in order, extending the scope whenever
// a Let statement binds a name, and returns the final statement's type as
// the block's own (the grammar guarantees the last statement is unbound).
func (inf *Inferrer) inferBlock(sc *scope, stmts []hir.Stmt) ([]hir.Stmt, types.Type, error) {
	out := make([]hir.Stmt, len(stmts))
	cur := sc
	var last types.Type
	for i, s := range stmts {
		e, t, err := inf.inferExpr(cur, s.Expr)
		if err != nil {
			return nil, types.Type{}, err
		}
		s.Expr = e
		if s.Bound {
			s.Type = option.Some(t)
			next := newScope(cur)
			next.bind(s.Name, t)
			cur = next
		}
		out[i] = s
		last = t
	}
	return out, last, nil
}

func (inf *Inferrer) inferExprs(sc *scope, exprs []hir.Expr) ([]hir.Expr, error) {
	out := make([]hir.Expr, len(exprs))
	for i, e := range exprs {
		ie, _, err := inf.inferExpr(sc, e)
		if err != nil {
			return nil, err
		}
		out[i] = ie
	}
	return out, nil
}

func (inf *Inferrer) inferExpr(sc *scope, e hir.Expr) (hir.Expr, types.Type, error) {
	switch n := e.(type) {
	case hir.BoolLit:
		return n, types.Boolean(), nil
	case hir.NumberLit:
		return n, types.Number(), nil
	case hir.StringLit:
		return n, types.String(), nil
	case hir.NoneLit:
		return n, types.None(), nil
	case hir.Var:
		t, ok := sc.lookup(n.Name)
		if !ok {
			return nil, types.Type{}, errors.VariableNotFound(n.Span(), n.Name)
		}
		return n, t, nil
	case *hir.Lambda:
		return inf.inferLambda(sc, n)
	case hir.Call:
		return inf.inferCall(sc, n)
	case hir.FieldAccess:
		return inf.inferFieldAccess(sc, n)
	case hir.UnaryExpr:
		operand, _, err := inf.inferExpr(sc, n.Operand)
		if err != nil {
			return nil, types.Type{}, err
		}
		n.Operand = operand
		return n, types.Boolean(), nil
	case hir.BinaryExpr:
		return inf.inferBinary(sc, n)
	case hir.EqualityExpr:
		return inf.inferEquality(sc, n)
	case hir.RecordLit:
		return inf.inferRecordLit(sc, n)
	case hir.IfExpr:
		return inf.inferIf(sc, n)
	case hir.IfTypeExpr:
		return inf.inferIfType(sc, n)
	case hir.IfListExpr:
		return inf.inferIfList(sc, n)
	case hir.IfMapExpr:
		return inf.inferIfMap(sc, n)
	case hir.ListLit:
		return inf.inferListLit(sc, n)
	case hir.MapLit:
		return inf.inferMapLit(sc, n)
	case hir.ListComprehension:
		return inf.inferComprehension(sc, n)
	case hir.Thunk:
		return inf.inferThunk(sc, n)
	case hir.TryExpr:
		return inf.inferTry(sc, n)
	case hir.SpawnExpr:
		return inf.inferSpawn(sc, n)
	case hir.CoerceExpr:
		return inf.inferCoerce(sc, n)
	default:
		return nil, types.Type{}, fmt.Errorf("infer: no case for %T", e)
	}
}

func (inf *Inferrer) inferCall(sc *scope, n hir.Call) (hir.Expr, types.Type, error) {
	callee, calleeT, err := inf.inferExpr(sc, n.Callee)
	if err != nil {
		return nil, types.Type{}, err
	}
	canon, err := types.Canonicalize(inf.env, calleeT, n.Span())
	if err != nil {
		return nil, types.Type{}, err
	}
	if canon.Kind != types.KFunction {
		return nil, types.Type{}, errors.FunctionExpected(n.Span(), canon)
	}
	args, err := inf.inferExprs(sc, n.Args)
	if err != nil {
		return nil, types.Type{}, err
	}
	n.Callee = callee
	n.Args = args
	n.FunctionType = option.Some(canon)
	return n, *canon.Result, nil
}

func (inf *Inferrer) inferFieldAccess(sc *scope, n hir.FieldAccess) (hir.Expr, types.Type, error) {
	recv, recvT, err := inf.inferExpr(sc, n.Recv)
	if err != nil {
		return nil, types.Type{}, err
	}
	fields, err := types.ResolveRecordFields(inf.env, recvT, n.Span())
	if err != nil {
		return nil, types.Type{}, err
	}
	idx := types.FieldIndex(fields, n.Name)
	if idx < 0 {
		return nil, types.Type{}, errors.RecordFieldUnknown(n.Span(), n.Name)
	}
	n.Recv = recv
	return n, fields[idx].Type, nil
}

func (inf *Inferrer) inferBinary(sc *scope, n hir.BinaryExpr) (hir.Expr, types.Type, error) {
	left, _, err := inf.inferExpr(sc, n.Left)
	if err != nil {
		return nil, types.Type{}, err
	}
	right, _, err := inf.inferExpr(sc, n.Right)
	if err != nil {
		return nil, types.Type{}, err
	}
	n.Left, n.Right = left, right
	switch n.Op {
	case hir.Or, hir.And, hir.Lt, hir.LtEq, hir.Gt, hir.GtEq:
		return n, types.Boolean(), nil
	default:
		return n, types.Number(), nil
	}
}

func (inf *Inferrer) inferEquality(sc *scope, n hir.EqualityExpr) (hir.Expr, types.Type, error) {
	left, leftT, err := inf.inferExpr(sc, n.Left)
	if err != nil {
		return nil, types.Type{}, err
	}
	right, rightT, err := inf.inferExpr(sc, n.Right)
	if err != nil {
		return nil, types.Type{}, err
	}
	lub, err := types.LUB(inf.env, leftT, rightT, n.Span())
	if err != nil {
		return nil, types.Type{}, err
	}
	n.Left, n.Right = left, right
	n.Type = option.Some(lub)
	return n, types.Boolean(), nil
}

func (inf *Inferrer) inferRecordLit(sc *scope, n hir.RecordLit) (hir.Expr, types.Type, error) {
	fields := make([]hir.RecordFieldInit, len(n.Fields))
	for i, f := range n.Fields {
		e, _, err := inf.inferExpr(sc, f.Expr)
		if err != nil {
			return nil, types.Type{}, err
		}
		fields[i] = hir.RecordFieldInit{Name: f.Name, Expr: e}
	}
	n.Fields = fields
	if n.HasSpread {
		spread, _, err := inf.inferExpr(sc, n.Spread)
		if err != nil {
			return nil, types.Type{}, err
		}
		n.Spread = spread
	}
	return n, types.Record(n.TypeName), nil
}

func (inf *Inferrer) inferIf(sc *scope, n hir.IfExpr) (hir.Expr, types.Type, error) {
	cond, _, err := inf.inferExpr(sc, n.Cond)
	if err != nil {
		return nil, types.Type{}, err
	}
	then, thenT, err := inf.inferBlock(sc, n.Then)
	if err != nil {
		return nil, types.Type{}, err
	}
	n.Cond = cond
	n.Then = then
	els, elseT, err := inf.inferBlock(sc, n.Else)
	if err != nil {
		return nil, types.Type{}, err
	}
	n.Else = els
	lub, err := types.LUB(inf.env, thenT, elseT, n.Span())
	if err != nil {
		return nil, types.Type{}, err
	}
	return n, lub, nil
}

func (inf *Inferrer) inferIfType(sc *scope, n hir.IfTypeExpr) (hir.Expr, types.Type, error) {
	scrutinee, _, err := inf.inferExpr(sc, n.Scrutinee)
	if err != nil {
		return nil, types.Type{}, err
	}
	n.Scrutinee = scrutinee

	branches := make([]hir.IfTypeBranch, len(n.Branches))
	branchTypes := make([]types.Type, 0, len(n.Branches)+1)
	for i, b := range n.Branches {
		bsc := newScope(sc)
		bsc.bind(b.Name, b.Type)
		body, bodyT, err := inf.inferBlock(bsc, b.Body)
		if err != nil {
			return nil, types.Type{}, err
		}
		branches[i] = hir.IfTypeBranch{Name: b.Name, Type: b.Type, Body: body}
		branchTypes = append(branchTypes, bodyT)
	}
	n.Branches = branches

	if n.HasElse {
		els, elseT, err := inf.inferBlock(sc, n.Else)
		if err != nil {
			return nil, types.Type{}, err
		}
		n.Else = els
		branchTypes = append(branchTypes, elseT)
	}

	result := branchTypes[0]
	for _, t := range branchTypes[1:] {
		result, err = types.LUB(inf.env, result, t, n.Span())
		if err != nil {
			return nil, types.Type{}, err
		}
	}
	return n, result, nil
}

func (inf *Inferrer) inferIfList(sc *scope, n hir.IfListExpr) (hir.Expr, types.Type, error) {
	list, listT, err := inf.inferExpr(sc, n.List)
	if err != nil {
		return nil, types.Type{}, err
	}
	canon, err := types.Canonicalize(inf.env, listT, n.Span())
	if err != nil {
		return nil, types.Type{}, err
	}
	if canon.Kind != types.KList {
		return nil, types.Type{}, errors.ListExpected(n.Span(), canon)
	}
	elem := *canon.Elem

	bsc := newScope(sc)
	bsc.bind(n.HeadName, types.Function(nil, elem))
	bsc.bind(n.TailName, canon)
	then, thenT, err := inf.inferBlock(bsc, n.Then)
	if err != nil {
		return nil, types.Type{}, err
	}
	n.List = list
	n.Then = then
	n.ElementType = option.Some(elem)

	els, elseT, err := inf.inferBlock(sc, n.Else)
	if err != nil {
		return nil, types.Type{}, err
	}
	n.Else = els
	lub, err := types.LUB(inf.env, thenT, elseT, n.Span())
	if err != nil {
		return nil, types.Type{}, err
	}
	return n, lub, nil
}

func (inf *Inferrer) inferIfMap(sc *scope, n hir.IfMapExpr) (hir.Expr, types.Type, error) {
	m, mapT, err := inf.inferExpr(sc, n.Map)
	if err != nil {
		return nil, types.Type{}, err
	}
	canon, err := types.Canonicalize(inf.env, mapT, n.Span())
	if err != nil {
		return nil, types.Type{}, err
	}
	if canon.Kind != types.KMap {
		return nil, types.Type{}, errors.MapExpected(n.Span(), canon)
	}
	key, _, err := inf.inferExpr(sc, n.Key)
	if err != nil {
		return nil, types.Type{}, err
	}

	bsc := newScope(sc)
	bsc.bind(n.Name, *canon.Value)
	then, thenT, err := inf.inferBlock(bsc, n.Then)
	if err != nil {
		return nil, types.Type{}, err
	}
	n.Map = m
	n.Key = key
	n.Then = then
	n.KeyType = option.Some(*canon.Key)
	n.ValueType = option.Some(*canon.Value)

	els, elseT, err := inf.inferBlock(sc, n.Else)
	if err != nil {
		return nil, types.Type{}, err
	}
	n.Else = els
	lub, err := types.LUB(inf.env, thenT, elseT, n.Span())
	if err != nil {
		return nil, types.Type{}, err
	}
	return n, lub, nil
}

func (inf *Inferrer) inferListLit(sc *scope, n hir.ListLit) (hir.Expr, types.Type, error) {
	elems := make([]hir.ListElement, len(n.Elements))
	for i, el := range n.Elements {
		e, _, err := inf.inferExpr(sc, el.Expr)
		if err != nil {
			return nil, types.Type{}, err
		}
		elems[i] = hir.ListElement{Expr: e, Spread: el.Spread}
	}
	n.Elements = elems
	return n, types.List(n.ElemType), nil
}

func (inf *Inferrer) inferMapLit(sc *scope, n hir.MapLit) (hir.Expr, types.Type, error) {
	entries := make([]hir.MapEntry, len(n.Entries))
	for i, en := range n.Entries {
		var key hir.Expr
		if en.Key != nil {
			k, _, err := inf.inferExpr(sc, en.Key)
			if err != nil {
				return nil, types.Type{}, err
			}
			key = k
		}
		value, _, err := inf.inferExpr(sc, en.Value)
		if err != nil {
			return nil, types.Type{}, err
		}
		entries[i] = hir.MapEntry{Key: key, Value: value, Spread: en.Spread}
	}
	n.Entries = entries
	return n, types.Map(n.KeyType, n.ValueType), nil
}

// inferComprehension infers the single node both the one- and two-variable
// surface forms share: the source's canonical kind decides whether a key
// binding is available, and the result is always a list of the
// element-expression's type.
func (inf *Inferrer) inferComprehension(sc *scope, n hir.ListComprehension) (hir.Expr, types.Type, error) {
	source, srcT, err := inf.inferExpr(sc, n.Source)
	if err != nil {
		return nil, types.Type{}, err
	}
	canon, err := types.Canonicalize(inf.env, srcT, n.Span())
	if err != nil {
		return nil, types.Type{}, err
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
	default:
		return nil, types.Type{}, errors.ListExpected(n.Span(), canon)
	}

	elem, elemT, err := inf.inferExpr(bsc, n.Elem)
	if err != nil {
		return nil, types.Type{}, err
	}
	n.Elem = elem
	n.Source = source
	n.InputType = option.Some(canon)
	return n, types.List(elemT), nil
}

func (inf *Inferrer) inferThunk(sc *scope, n hir.Thunk) (hir.Expr, types.Type, error) {
	inner, innerT, err := inf.inferExpr(sc, n.Inner)
	if err != nil {
		return nil, types.Type{}, err
	}
	n.Inner = inner
	n.Type = option.Some(innerT)
	return n, innerT, nil
}

// inferTry splits the operand's canonical union into the configured error
// type and everything else; the non-error remainder (collapsed back to a
// union when more than one type survives) is the try expression's type.
func (inf *Inferrer) inferTry(sc *scope, n hir.TryExpr) (hir.Expr, types.Type, error) {
	operand, operandT, err := inf.inferExpr(sc, n.Operand)
	if err != nil {
		return nil, types.Type{}, err
	}
	members, err := types.UnionMembers(inf.env, operandT, n.Span())
	if err != nil {
		return nil, types.Type{}, err
	}
	errType := inf.env.ErrorType()

	var rest []types.Type
	for _, m := range members {
		eq, err := types.Equal(inf.env, m, errType, n.Span())
		if err != nil {
			return nil, types.Type{}, err
		}
		if !eq {
			rest = append(rest, m)
		}
	}

	var successType types.Type
	switch len(rest) {
	case 0:
		successType = types.None()
	case 1:
		successType = rest[0]
	default:
		u := rest[0]
		for _, t := range rest[1:] {
			u = types.Union(u, t)
		}
		successType, err = types.Canonicalize(inf.env, u, n.Span())
		if err != nil {
			return nil, types.Type{}, err
		}
	}

	n.Operand = operand
	n.Type = option.Some(successType)
	return n, successType, nil
}

// inferSpawn yields the spawned lambda's declared result type: the static
// type system does not distinguish a running task from its eventual
// value, leaving that distinction to the runtime thunk representation.
func (inf *Inferrer) inferSpawn(sc *scope, n hir.SpawnExpr) (hir.Expr, types.Type, error) {
	lambda, lamT, err := inf.inferLambda(sc, n.Lambda)
	if err != nil {
		return nil, types.Type{}, err
	}
	n.Lambda = lambda
	return n, *lamT.Result, nil
}

func (inf *Inferrer) inferCoerce(sc *scope, n hir.CoerceExpr) (hir.Expr, types.Type, error) {
	operand, operandT, err := inf.inferExpr(sc, n.Operand)
	if err != nil {
		return nil, types.Type{}, err
	}
	n.Operand = operand
	n.From = option.Some(operandT)
	n.To = option.Some(n.ToDecl)
	return n, n.ToDecl, nil
}
