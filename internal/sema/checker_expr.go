package sema

import (
	"ember/internal/diag"
	"ember/internal/hir"
	"ember/internal/types"
)

func (c *Checker) typeOfLambda(parent *scope, l *hir.Lambda) types.Type {
	sc := newScope(parent)
	for _, p := range l.Params {
		sc.bind(p.Name, p.Type)
	}
	bodyType := c.checkBlock(sc, l.Body)
	ok, err := types.Subsumes(c.env, bodyType, l.Result, l.Span())
	if err != nil {
		c.errorf(diag.TypesNotMatched, l.Span(), "%v", err)
	} else if !ok {
		c.errorf(diag.TypesNotMatched, l.Span(), "function body type %s does not subsume declared result %s", bodyType, l.Result)
	}
	params := make([]types.Type, len(l.Params))
	for i, p := range l.Params {
		params[i] = p.Type
	}
	return types.Function(params, l.Result)
}

// checkBlock checks every statement's expression and extends the scope for
// Let bindings, trusting the inferrer's Stmt.Type slot for the bound name's
// type rather than recomputing it.
func (c *Checker) checkBlock(sc *scope, stmts []hir.Stmt) types.Type {
	cur := sc
	var last types.Type = types.None()
	for _, s := range stmts {
		last = c.typeOf(cur, s.Expr)
		if s.Bound {
			t, ok := s.Type.Get()
			if !ok {
				t = last
			}
			next := newScope(cur)
			next.bind(s.Name, t)
			cur = next
		}
	}
	return last
}

func (c *Checker) typeOf(sc *scope, e hir.Expr) types.Type {
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
		t, ok := sc.lookup(n.Name)
		if !ok {
			// internal/infer rejects an unresolved variable before the
			// checker ever runs; a missing binding here means a caller
			// handed the checker a tree that never passed inference.
			return types.Any()
		}
		return t
	case *hir.Lambda:
		return c.typeOfLambda(sc, n)
	case hir.Call:
		return c.checkCall(sc, n)
	case hir.FieldAccess:
		return c.checkFieldAccess(sc, n)
	case hir.UnaryExpr:
		c.typeOf(sc, n.Operand)
		return types.Boolean()
	case hir.BinaryExpr:
		c.typeOf(sc, n.Left)
		c.typeOf(sc, n.Right)
		switch n.Op {
		case hir.Or, hir.And, hir.Lt, hir.LtEq, hir.Gt, hir.GtEq:
			return types.Boolean()
		default:
			return types.Number()
		}
	case hir.EqualityExpr:
		return c.checkEquality(sc, n)
	case hir.RecordLit:
		return c.checkRecordLit(sc, n)
	case hir.IfExpr:
		return c.checkIf(sc, n)
	case hir.IfTypeExpr:
		return c.checkIfType(sc, n)
	case hir.IfListExpr:
		return c.checkIfList(sc, n)
	case hir.IfMapExpr:
		return c.checkIfMap(sc, n)
	case hir.ListLit:
		for _, el := range n.Elements {
			c.typeOf(sc, el.Expr)
		}
		return types.List(n.ElemType)
	case hir.MapLit:
		for _, en := range n.Entries {
			if en.Key != nil {
				c.typeOf(sc, en.Key)
			}
			c.typeOf(sc, en.Value)
		}
		return types.Map(n.KeyType, n.ValueType)
	case hir.ListComprehension:
		return c.checkComprehension(sc, n)
	case hir.Thunk:
		return c.typeOf(sc, n.Inner)
	case hir.TryExpr:
		return c.checkTry(sc, n)
	case hir.SpawnExpr:
		return c.checkSpawn(sc, n)
	case hir.CoerceExpr:
		c.typeOf(sc, n.Operand)
		return n.ToDecl
	default:
		return types.Any()
	}
}

func (c *Checker) checkCall(sc *scope, n hir.Call) types.Type {
	c.typeOf(sc, n.Callee)
	ft, ok := n.FunctionType.Get()
	if !ok {
		for _, a := range n.Args {
			c.typeOf(sc, a)
		}
		return types.Any()
	}
	if len(n.Args) != len(ft.Params) {
		c.errorf(diag.WrongArgumentCount, n.Span(), "expected %d arguments, got %d", len(ft.Params), len(n.Args))
	}
	for i, a := range n.Args {
		at := c.typeOf(sc, a)
		if i >= len(ft.Params) {
			continue
		}
		ok, err := types.Subsumes(c.env, at, ft.Params[i], n.Span())
		if err != nil {
			c.errorf(diag.TypesNotMatched, n.Span(), "%v", err)
			continue
		}
		if !ok {
			c.errorf(diag.TypesNotMatched, n.Span(), "argument %d of type %s does not subsume parameter type %s", i+1, at, ft.Params[i])
		}
	}
	return *ft.Result
}

func (c *Checker) checkFieldAccess(sc *scope, n hir.FieldAccess) types.Type {
	recvT := c.typeOf(sc, n.Recv)
	fields, err := types.ResolveRecordFields(c.env, recvT, n.Span())
	if err != nil {
		return types.Any()
	}
	idx := types.FieldIndex(fields, n.Name)
	if idx < 0 {
		return types.Any()
	}
	return fields[idx].Type
}

// checkEquality enforces both obligations spec.md §4.5 names: each operand
// must subsume the stored lub, and the two operand types must not be
// disjoint (TypeNotComparable) — a bare number/string comparison against a
// record, say, is rejected even though both trivially subsume `any`.
func (c *Checker) checkEquality(sc *scope, n hir.EqualityExpr) types.Type {
	leftT := c.typeOf(sc, n.Left)
	rightT := c.typeOf(sc, n.Right)
	lub, ok := n.Type.Get()
	if !ok {
		lub, _ = types.LUB(c.env, leftT, rightT, n.Span())
	}
	if ok, err := types.Subsumes(c.env, leftT, lub, n.Span()); err == nil && !ok {
		c.errorf(diag.TypeNotComparable, n.Span(), "left operand of type %s does not subsume %s", leftT, lub)
	}
	if ok, err := types.Subsumes(c.env, rightT, lub, n.Span()); err == nil && !ok {
		c.errorf(diag.TypeNotComparable, n.Span(), "right operand of type %s does not subsume %s", rightT, lub)
	}
	leftSubRight, errA := types.Subsumes(c.env, leftT, rightT, n.Span())
	rightSubLeft, errB := types.Subsumes(c.env, rightT, leftT, n.Span())
	if errA == nil && errB == nil && !leftSubRight && !rightSubLeft {
		c.errorf(diag.TypeNotComparable, n.Span(), "cannot compare disjoint types %s and %s", leftT, rightT)
	}
	return types.Boolean()
}

func (c *Checker) checkRecordLit(sc *scope, n hir.RecordLit) types.Type {
	fields, err := types.ResolveRecordFields(c.env, types.Record(n.TypeName), n.Span())
	if err != nil {
		c.errorf(diag.RecordUnknown, n.Span(), "%v", err)
		for _, f := range n.Fields {
			c.typeOf(sc, f.Expr)
		}
		return types.Record(n.TypeName)
	}

	provided := map[string]bool{}
	for _, f := range n.Fields {
		ft := c.typeOf(sc, f.Expr)
		provided[f.Name] = true
		idx := types.FieldIndex(fields, f.Name)
		if idx < 0 {
			c.errorf(diag.RecordFieldUnknown, n.Span(), "unknown field %q in record %q", f.Name, n.TypeName)
			continue
		}
		ok, err := types.Subsumes(c.env, ft, fields[idx].Type, n.Span())
		if err != nil {
			c.errorf(diag.TypesNotMatched, n.Span(), "%v", err)
			continue
		}
		if !ok {
			c.errorf(diag.TypesNotMatched, n.Span(), "field %q of type %s does not subsume declared type %s", f.Name, ft, fields[idx].Type)
		}
	}

	if n.HasSpread {
		c.typeOf(sc, n.Spread)
		return types.Record(n.TypeName)
	}
	for _, f := range fields {
		if !provided[f.Name] {
			c.errorf(diag.RecordFieldMissing, n.Span(), "missing field %q in construction of %q", f.Name, n.TypeName)
		}
	}
	return types.Record(n.TypeName)
}

func (c *Checker) checkIf(sc *scope, n hir.IfExpr) types.Type {
	c.typeOf(sc, n.Cond)
	thenT := c.checkBlock(sc, n.Then)
	elseT := c.checkBlock(sc, n.Else)
	if lub, err := types.LUB(c.env, thenT, elseT, n.Span()); err == nil {
		return lub
	}
	return thenT
}

// checkIfType enforces the four if-type obligations: the scrutinee must be
// a variant, every branch must be subsumed by it, no branch but the else
// may narrow to any, and a missing else requires the branches to exactly
// exhaust the scrutinee's members.
func (c *Checker) checkIfType(sc *scope, n hir.IfTypeExpr) types.Type {
	scrutT := c.typeOf(sc, n.Scrutinee)
	canon, err := types.Canonicalize(c.env, scrutT, n.Span())
	if err != nil {
		c.errorf(diag.TypesNotMatched, n.Span(), "%v", err)
	} else if canon.Kind != types.KUnion && canon.Kind != types.KAny {
		c.errorf(diag.VariantExpected, n.Span(), "if-type scrutinee must be a union or any, got %s", canon)
	}

	var branchTypes []types.Type
	for _, b := range n.Branches {
		if bc, err := types.Canonicalize(c.env, b.Type, n.Span()); err == nil {
			if bc.Kind == types.KAny {
				c.errorf(diag.AnyTypeBranch, n.Span(), "if-type branch %q may not narrow to any", b.Name)
			}
			if ok, serr := types.Subsumes(c.env, bc, canon, n.Span()); serr == nil && !ok {
				c.errorf(diag.TypesNotMatched, n.Span(), "branch type %s is not subsumed by scrutinee type %s", bc, canon)
			}
		}
		bsc := newScope(sc)
		bsc.bind(b.Name, b.Type)
		branchTypes = append(branchTypes, c.checkBlock(bsc, b.Body))
	}

	if n.HasElse {
		branchTypes = append(branchTypes, c.checkBlock(sc, n.Else))
	} else if eq, err := types.Equal(c.env, branchUnion(n.Branches), canon, n.Span()); err == nil && !eq {
		c.errorf(diag.MissingElseBlock, n.Span(), "if-type without else does not cover every member of %s", canon)
	}

	if len(branchTypes) == 0 {
		return types.None()
	}
	result := branchTypes[0]
	for _, t := range branchTypes[1:] {
		if lub, err := types.LUB(c.env, result, t, n.Span()); err == nil {
			result = lub
		}
	}
	return result
}

func branchUnion(branches []hir.IfTypeBranch) types.Type {
	if len(branches) == 0 {
		return types.None()
	}
	u := branches[0].Type
	for _, b := range branches[1:] {
		u = types.Union(u, b.Type)
	}
	return u
}

func (c *Checker) checkIfList(sc *scope, n hir.IfListExpr) types.Type {
	listT := c.typeOf(sc, n.List)
	canon, err := types.Canonicalize(c.env, listT, n.Span())
	if err != nil {
		c.errorf(diag.ListExpected, n.Span(), "%v", err)
	} else if canon.Kind != types.KList {
		c.errorf(diag.ListExpected, n.Span(), "if-list scrutinee must be a list, got %s", canon)
	}
	elem, ok := n.ElementType.Get()
	if !ok {
		elem = types.Any()
	}

	bsc := newScope(sc)
	bsc.bind(n.HeadName, types.Function(nil, elem))
	bsc.bind(n.TailName, types.List(elem))
	thenT := c.checkBlock(bsc, n.Then)
	elseT := c.checkBlock(sc, n.Else)
	if lub, err := types.LUB(c.env, thenT, elseT, n.Span()); err == nil {
		return lub
	}
	return thenT
}

func (c *Checker) checkIfMap(sc *scope, n hir.IfMapExpr) types.Type {
	mapT := c.typeOf(sc, n.Map)
	canon, err := types.Canonicalize(c.env, mapT, n.Span())
	if err != nil {
		c.errorf(diag.MapExpected, n.Span(), "%v", err)
	} else if canon.Kind != types.KMap {
		c.errorf(diag.MapExpected, n.Span(), "if-map scrutinee must be a map, got %s", canon)
	}
	c.typeOf(sc, n.Key)
	valueT, ok := n.ValueType.Get()
	if !ok {
		valueT = types.Any()
	}

	bsc := newScope(sc)
	bsc.bind(n.Name, valueT)
	thenT := c.checkBlock(bsc, n.Then)
	elseT := c.checkBlock(sc, n.Else)
	if lub, err := types.LUB(c.env, thenT, elseT, n.Span()); err == nil {
		return lub
	}
	return thenT
}

func (c *Checker) checkComprehension(sc *scope, n hir.ListComprehension) types.Type {
	c.typeOf(sc, n.Source)
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
	default:
		c.errorf(diag.ListExpected, n.Span(), "comprehension source must be a list or map, got %s", canon)
	}
	elemT := c.typeOf(bsc, n.Elem)
	return types.List(elemT)
}

// checkTry enforces the three-way subsumption spec.md §4.5 names: the
// operand must fit within success|error, and each of success and error
// must individually fit within the operand (so a try on a type that can't
// actually produce the configured error record is rejected).
func (c *Checker) checkTry(sc *scope, n hir.TryExpr) types.Type {
	operandT := c.typeOf(sc, n.Operand)
	errType := c.env.ErrorType()
	successType, ok := n.Type.Get()
	if !ok {
		successType = types.Any()
	}

	if whole, err := types.LUB(c.env, successType, errType, n.Span()); err == nil {
		if ok, _ := types.Subsumes(c.env, operandT, whole, n.Span()); !ok {
			c.errorf(diag.TypesNotMatched, n.Span(), "try operand of type %s is not subsumed by %s", operandT, whole)
		}
	}
	if ok, _ := types.Subsumes(c.env, successType, operandT, n.Span()); !ok {
		c.errorf(diag.TypesNotMatched, n.Span(), "success type %s is not subsumed by operand type %s", successType, operandT)
	}
	if ok, _ := types.Subsumes(c.env, errType, operandT, n.Span()); !ok {
		c.errorf(diag.TypesNotMatched, n.Span(), "error type %s is not subsumed by operand type %s", errType, operandT)
	}
	return successType
}

func (c *Checker) checkSpawn(sc *scope, n hir.SpawnExpr) types.Type {
	if len(n.Lambda.Params) != 0 {
		c.errorf(diag.SpawnOperationArgument, n.Span(), "spawned lambda must take zero arguments, got %d", len(n.Lambda.Params))
	}
	c.typeOfLambda(sc, n.Lambda)
	return n.Lambda.Result
}
