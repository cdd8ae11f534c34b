package mir

import (
	"ember/internal/hir"
	"ember/internal/source"
	"ember/internal/types"
)

const thunkName = "$thunk"

var binOpToArith = map[hir.BinaryOp]ArithmeticOp{
	hir.Add: ArithAdd,
	hir.Sub: ArithSub,
	hir.Mul: ArithMul,
	hir.Div: ArithDiv,
	hir.Mod: ArithMod,
}

var binOpToCmp = map[hir.BinaryOp]ComparisonOp{
	hir.Lt:   CmpLess,
	hir.LtEq: CmpLessEqual,
	hir.Gt:   CmpGreater,
	hir.GtEq: CmpGreaterEqual,
}

func (lw *Lowerer) lowerExpr(sc *scope, e hir.Expr) (Expr, error) {
	sp := e.Span()
	switch n := e.(type) {
	case hir.BoolLit:
		return BoolLit{exprBase{sp}, n.Value}, nil
	case hir.NumberLit:
		return NumberLit{exprBase{sp}, n.Text}, nil
	case hir.StringLit:
		return StringLit{exprBase{sp}, n.Value}, nil
	case hir.NoneLit:
		return NoneLit{exprBase{sp}}, nil
	case hir.Var:
		return Variable{exprBase{sp}, n.Name}, nil
	case *hir.Lambda:
		lr, err := lw.lowerLambdaValue(sc, n)
		return lr, err
	case hir.Call:
		return lw.lowerCall(sc, n)
	case hir.FieldAccess:
		return lw.lowerFieldAccess(sc, n)
	case hir.UnaryExpr:
		operand, err := lw.lowerExpr(sc, n.Operand)
		if err != nil {
			return nil, err
		}
		return lowerNot(sp, operand), nil
	case hir.BinaryExpr:
		return lw.lowerBinary(sc, n)
	case hir.EqualityExpr:
		return lw.lowerEquality(sc, n)
	case hir.RecordLit:
		return lw.lowerRecordLit(sc, n)
	case hir.IfExpr:
		return lw.lowerIf(sc, n)
	case hir.IfTypeExpr:
		return lw.lowerIfType(sc, n)
	case hir.IfListExpr:
		return lw.lowerIfList(sc, n)
	case hir.IfMapExpr:
		return lw.lowerIfMap(sc, n)
	case hir.ListLit:
		return lw.lowerListLit(sc, n)
	case hir.MapLit:
		return lw.lowerMapLit(sc, n)
	case hir.ListComprehension:
		return lw.lowerComprehension(sc, n)
	case hir.Thunk:
		return lw.lowerThunk(sc, n)
	case hir.TryExpr:
		return lw.lowerTry(sc, n)
	case hir.SpawnExpr:
		return lw.lowerSpawn(sc, n)
	case hir.CoerceExpr:
		return lw.lowerCoerce(sc, n)
	default:
		return nil, errTypeNotInferred(sp, "unrecognized expression node")
	}
}

// lowerNot implements §4.6's Not rule verbatim: `!e -> if e then false else
// true`. EqualityExpr's own Negate flag (the desugared `!=`) reuses this
// same helper rather than duplicating the three-node shape.
func lowerNot(sp source.Span, operand Expr) Expr {
	return If{exprBase{sp}, operand, BoolLit{exprBase{sp}, false}, BoolLit{exprBase{sp}, true}}
}

func (lw *Lowerer) lowerCall(sc *scope, n hir.Call) (Expr, error) {
	callee, err := lw.lowerExpr(sc, n.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]Expr, len(n.Args))
	for i, a := range n.Args {
		ae, err := lw.lowerExpr(sc, a)
		if err != nil {
			return nil, err
		}
		args[i] = ae
	}
	ft, ok := n.FunctionType.Get()
	if !ok {
		return nil, errTypeNotInferred(n.Span(), "call target's function type")
	}
	canonFt, err := types.Canonicalize(lw.env, ft, n.Span())
	if err != nil {
		return nil, err
	}
	if canonFt.Kind != types.KFunction {
		return nil, errFunctionExpected(n.Span(), canonFt)
	}
	mt, err := compileType(lw.env, ft, n.Span())
	if err != nil {
		return nil, err
	}
	return Call{exprBase{n.Span()}, mt, callee, args}, nil
}

func (lw *Lowerer) lowerFieldAccess(sc *scope, n hir.FieldAccess) (Expr, error) {
	recvT := lw.typeOf(sc, n.Recv)
	fields, err := types.ResolveRecordFields(lw.env, recvT, n.Span())
	if err != nil {
		return nil, err
	}
	idx := types.FieldIndex(fields, n.Name)
	if idx < 0 {
		return nil, errUnknownField(n.Span(), n.Name)
	}
	recvMir, err := compileType(lw.env, recvT, n.Span())
	if err != nil {
		return nil, err
	}
	recv, err := lw.lowerExpr(sc, n.Recv)
	if err != nil {
		return nil, err
	}
	return RecordField{exprBase{n.Span()}, recvMir, idx, recv}, nil
}

func (lw *Lowerer) lowerBinary(sc *scope, n hir.BinaryExpr) (Expr, error) {
	sp := n.Span()
	left, err := lw.lowerExpr(sc, n.Left)
	if err != nil {
		return nil, err
	}
	// And/Or short-circuit through If rather than a boolean MIR primitive,
	// the same way Not does: `a && b -> if a then b else false`,
	// `a || b -> if a then true else b`.
	switch n.Op {
	case hir.And:
		right, err := lw.lowerExpr(sc, n.Right)
		if err != nil {
			return nil, err
		}
		return If{exprBase{sp}, left, right, BoolLit{exprBase{sp}, false}}, nil
	case hir.Or:
		right, err := lw.lowerExpr(sc, n.Right)
		if err != nil {
			return nil, err
		}
		return If{exprBase{sp}, left, BoolLit{exprBase{sp}, true}, right}, nil
	}
	right, err := lw.lowerExpr(sc, n.Right)
	if err != nil {
		return nil, err
	}
	if op, ok := binOpToCmp[n.Op]; ok {
		return ComparisonOperation{exprBase{sp}, op, left, right}, nil
	}
	return ArithmeticOperation{exprBase{sp}, binOpToArith[n.Op], left, right}, nil
}

// lowerEquality dispatches on the canonical lub slot the inferrer stored,
// exactly as §4.6's Equality rule directs: number compares natively,
// string calls the runtime equality function, and everything else (record,
// union, list, map, function) delegates to a single structural-equality
// runtime entry point rather than hand-expanding a field/tag comparison
// tree in MIR -- a simplification over a literal per-kind expansion,
// recorded as such; the runtime is expected to know how to compare its own
// tagged representations.
func (lw *Lowerer) lowerEquality(sc *scope, n hir.EqualityExpr) (Expr, error) {
	sp := n.Span()
	left, err := lw.lowerExpr(sc, n.Left)
	if err != nil {
		return nil, err
	}
	right, err := lw.lowerExpr(sc, n.Right)
	if err != nil {
		return nil, err
	}
	lub, ok := n.Type.Get()
	if !ok {
		lub = types.Any()
	}
	canon, err := types.Canonicalize(lw.env, lub, sp)
	if err != nil {
		return nil, err
	}
	var cmp Expr
	switch canon.Kind {
	case types.KNumber, types.KBoolean:
		cmp = ComparisonOperation{exprBase{sp}, CmpEqual, left, right}
	case types.KNone:
		cmp = BoolLit{exprBase{sp}, true}
	case types.KString:
		cmp = Call{
			exprBase{sp},
			Function([]Type{ByteString(), ByteString()}, Boolean()),
			Variable{exprBase{sp}, lw.stringSymbol(rtStringEqual)},
			[]Expr{left, right},
		}
	default:
		cmp = Call{
			exprBase{sp},
			Function([]Type{VariantType(), VariantType()}, Boolean()),
			Variable{exprBase{sp}, "structural-equal"},
			[]Expr{left, right},
		}
	}
	if n.Negate {
		return lowerNot(sp, cmp), nil
	}
	return cmp, nil
}

// lowerRecordLit handles both construction (no spread) and update (spread
// present), following compile_record_fields: each field compiles to its
// own Let so it is evaluated exactly once, then the final Record node
// reads the field names back out of those lets in declaration order. An
// update first lets the spread expression bind to a synthetic name so
// unmodified fields can read back out of it via RecordField.
func (lw *Lowerer) lowerRecordLit(sc *scope, n hir.RecordLit) (Expr, error) {
	sp := n.Span()
	recType := types.Record(n.TypeName)
	fields, err := types.ResolveRecordFields(lw.env, recType, sp)
	if err != nil {
		return nil, err
	}
	recMir, err := compileType(lw.env, recType, sp)
	if err != nil {
		return nil, err
	}

	given := map[string]hir.Expr{}
	for _, f := range n.Fields {
		given[f.Name] = f.Expr
	}

	const baseName = "$base"
	var base Expr
	if n.HasSpread {
		base, err = lw.lowerExpr(sc, n.Spread)
		if err != nil {
			return nil, err
		}
	}

	fieldVarName := func(name string) string { return "$" + name }

	// Build the final Record node referencing each field's let-bound name.
	finalFields := make([]Expr, len(fields))
	for i, f := range fields {
		finalFields[i] = Variable{exprBase{sp}, fieldVarName(f.Name)}
	}
	body := Expr(RecordExpr{exprBase{sp}, recMir, finalFields})

	// Wrap with one Let per field, innermost (last field) first so each
	// field's let is in scope for the final Record.
	for i := len(fields) - 1; i >= 0; i-- {
		f := fields[i]
		var valueExpr Expr
		if src, ok := given[f.Name]; ok {
			valueExpr, err = lw.lowerExpr(sc, src)
			if err != nil {
				return nil, err
			}
		} else {
			valueExpr = RecordField{exprBase{sp}, recMir, i, Variable{exprBase{sp}, baseName}}
		}
		fieldMir, err := compileType(lw.env, f.Type, sp)
		if err != nil {
			return nil, err
		}
		body = Let{exprBase{sp}, fieldVarName(f.Name), fieldMir, valueExpr, body}
	}

	if n.HasSpread {
		body = Let{exprBase{sp}, baseName, recMir, base, body}
	}
	return body, nil
}

func (lw *Lowerer) lowerIf(sc *scope, n hir.IfExpr) (Expr, error) {
	cond, err := lw.lowerExpr(sc, n.Cond)
	if err != nil {
		return nil, err
	}
	then, err := lw.lowerBlock(sc, n.Then)
	if err != nil {
		return nil, err
	}
	els, err := lw.lowerBlock(sc, n.Else)
	if err != nil {
		return nil, err
	}
	return If{exprBase{n.Span()}, cond, then, els}, nil
}

// compileAlternatives builds the per-union-member Alternative set §4.6
// describes for if-type, shared verbatim by the try operator's success
// dispatch (lowerTry): for each member of surfaceType's canonical union,
// a primitive/record member is tagged directly; a function/list/map
// member is tagged via its boxed concrete-record representation. Either
// way, if surfaceType itself is a union, the bound name is re-wrapped as
// a variant of surfaceType before body runs, so body always sees name at
// the declared (possibly still-union) type; otherwise it is unwrapped to
// the bare member value.
func (lw *Lowerer) compileAlternatives(name string, surfaceType types.Type, body Expr, sp source.Span) ([]Alternative, error) {
	canon, err := types.Canonicalize(lw.env, surfaceType, sp)
	if err != nil {
		return nil, err
	}
	members, err := types.UnionMembers(lw.env, surfaceType, sp)
	if err != nil {
		return nil, err
	}
	isUnion := canon.Kind == types.KUnion

	alts := make([]Alternative, 0, len(members))
	for _, m := range members {
		memberMir, err := compileType(lw.env, m, sp)
		if err != nil {
			return nil, err
		}
		switch m.Kind {
		case types.KFunction, types.KList, types.KMap:
			// compileType already boxes lists and maps as a concrete record;
			// a function is boxed through compileConcreteFunction.
			concrete := memberMir
			if m.Kind == types.KFunction {
				if concrete, err = compileConcreteFunction(lw.env, m, sp); err != nil {
					return nil, err
				}
			}
			alts = append(alts, genericAlternative(name, body, isUnion, memberMir, concrete, sp))
		default:
			if isUnion {
				wrapped := Let{exprBase{sp}, name, VariantType(),
					Variant{exprBase{sp}, memberMir, Variable{exprBase{sp}, name}}, body}
				alts = append(alts, Alternative{Type: memberMir, Name: name, Body: wrapped})
			} else {
				alts = append(alts, Alternative{Type: memberMir, Name: name, Body: body})
			}
		}
	}
	return alts, nil
}

func genericAlternative(name string, body Expr, isUnion bool, memberMir, concreteMir Type, sp source.Span) Alternative {
	var wrapped Expr
	if isUnion {
		wrapped = Let{exprBase{sp}, name, VariantType(),
			Variant{exprBase{sp}, concreteMir, Variable{exprBase{sp}, name}}, body}
	} else {
		wrapped = Let{exprBase{sp}, name, memberMir,
			RecordField{exprBase{sp}, concreteMir, 0, Variable{exprBase{sp}, name}}, body}
	}
	return Alternative{Type: concreteMir, Name: name, Body: wrapped}
}

func (lw *Lowerer) lowerIfType(sc *scope, n hir.IfTypeExpr) (Expr, error) {
	sp := n.Span()
	scrutinee, err := lw.lowerExpr(sc, n.Scrutinee)
	if err != nil {
		return nil, err
	}

	var alts []Alternative
	for _, b := range n.Branches {
		bsc := newScope(sc)
		bsc.bind(b.Name, b.Type)
		body, err := lw.lowerBlock(bsc, b.Body)
		if err != nil {
			return nil, err
		}
		ba, err := lw.compileAlternatives(b.Name, b.Type, body, sp)
		if err != nil {
			return nil, err
		}
		alts = append(alts, ba...)
	}

	var def *DefaultAlternative
	if n.HasElse {
		elseBody, err := lw.lowerBlock(sc, n.Else)
		if err != nil {
			return nil, err
		}
		def = &DefaultAlternative{Name: "$_default", Body: elseBody}
	}
	return Case{exprBase{sp}, scrutinee, alts, def}, nil
}

// lowerIfList has no literal §4.6 entry (the distilled spec covers
// if-type/try/equality/not/spawn/coercions/records/list-map literals/
// thunks but is silent on if-list and if-map); this lowering is this
// repository's own extrapolation, built from the primitives §4.6 does
// define: the runtime "is this list empty" predicate decides an ordinary
// If, Not's `if c then false else true` shape supplies the negation, and
// HeadName binds to a nullary closure per internal/sema's lazy-head typing
// (types.Function(nil, elem)) rather than evaluating the head eagerly.
func (lw *Lowerer) lowerIfList(sc *scope, n hir.IfListExpr) (Expr, error) {
	sp := n.Span()
	list, err := lw.lowerExpr(sc, n.List)
	if err != nil {
		return nil, err
	}
	listMir := compileConcreteList()
	elem, ok := n.ElementType.Get()
	if !ok {
		elem = types.Any()
	}
	elemMir, err := compileType(lw.env, elem, sp)
	if err != nil {
		return nil, err
	}

	const baseName = "$list"
	isEmpty := Call{exprBase{sp}, Function([]Type{listMir}, Boolean()),
		Variable{exprBase{sp}, lw.listSymbol(rtListIsEmpty)}, []Expr{Variable{exprBase{sp}, baseName}}}

	bsc := newScope(sc)
	bsc.bind(n.HeadName, types.Function(nil, elem))
	bsc.bind(n.TailName, types.List(elem))
	then, err := lw.lowerBlock(bsc, n.Then)
	if err != nil {
		return nil, err
	}
	headDef := Definition{
		Name:   n.HeadName,
		Params: nil,
		Body: Call{exprBase{sp}, Function([]Type{listMir}, elemMir),
			Variable{exprBase{sp}, lw.listSymbol(rtListHead)}, []Expr{Variable{exprBase{sp}, baseName}}},
		Result: elemMir,
	}
	tailValue := Call{exprBase{sp}, Function([]Type{listMir}, listMir),
		Variable{exprBase{sp}, lw.listSymbol(rtListTail)}, []Expr{Variable{exprBase{sp}, baseName}}}
	nonEmptyBranch := Expr(LetRecursive{exprBase{sp}, headDef, then})
	nonEmptyBranch = Let{exprBase{sp}, n.TailName, listMir, tailValue, nonEmptyBranch}

	els, err := lw.lowerBlock(sc, n.Else)
	if err != nil {
		return nil, err
	}

	body := If{exprBase{sp}, lowerNot(sp, isEmpty), nonEmptyBranch, els}
	return Let{exprBase{sp}, baseName, listMir, list, body}, nil
}

// lowerIfMap is if-list's counterpart, built the same way from a runtime
// membership check and a lookup call; see lowerIfList's note.
func (lw *Lowerer) lowerIfMap(sc *scope, n hir.IfMapExpr) (Expr, error) {
	sp := n.Span()
	m, err := lw.lowerExpr(sc, n.Map)
	if err != nil {
		return nil, err
	}
	key, err := lw.lowerExpr(sc, n.Key)
	if err != nil {
		return nil, err
	}
	valueT, ok := n.ValueType.Get()
	if !ok {
		valueT = types.Any()
	}
	valueMir, err := compileType(lw.env, valueT, sp)
	if err != nil {
		return nil, err
	}
	mapMir := compileConcreteMap()
	keyT := lw.typeOf(sc, n.Key)
	keyMir, err := compileType(lw.env, keyT, sp)
	if err != nil {
		return nil, err
	}

	const baseName, keyName = "$map", "$key"
	mRef, kRef := Variable{exprBase{sp}, baseName}, Variable{exprBase{sp}, keyName}
	contains := Call{exprBase{sp}, Function([]Type{mapMir, keyMir}, Boolean()),
		Variable{exprBase{sp}, lw.mapSymbol(rtMapContains)}, []Expr{mRef, kRef}}

	bsc := newScope(sc)
	bsc.bind(n.Name, valueT)
	then, err := lw.lowerBlock(bsc, n.Then)
	if err != nil {
		return nil, err
	}
	lookup := Call{exprBase{sp}, Function([]Type{mapMir, keyMir}, valueMir),
		Variable{exprBase{sp}, lw.mapSymbol(rtMapLookup)}, []Expr{mRef, kRef}}
	nonEmptyBranch := Let{exprBase{sp}, n.Name, valueMir, lookup, then}

	els, err := lw.lowerBlock(sc, n.Else)
	if err != nil {
		return nil, err
	}

	body := If{exprBase{sp}, contains, Expr(nonEmptyBranch), els}
	body2 := Let{exprBase{sp}, keyName, keyMir, key, body}
	return Let{exprBase{sp}, baseName, mapMir, m, body2}, nil
}

// lowerListLit lowers splice-and-element list literals to nested
// list-concat calls over singleton cons cells, which keeps element order
// strictly positional regardless of the runtime's internal cons direction
// (see SUPPLEMENTED FEATURES' list/map literal spread merge order note).
func (lw *Lowerer) lowerListLit(sc *scope, n hir.ListLit) (Expr, error) {
	sp := n.Span()
	elemMir, err := compileType(lw.env, n.ElemType, sp)
	if err != nil {
		return nil, err
	}
	listMir := compileConcreteList()
	emptyCall := func() Expr {
		return Call{exprBase{sp}, Function(nil, listMir), Variable{exprBase{sp}, lw.listSymbol(rtListEmpty)}, nil}
	}
	consFn := Function([]Type{elemMir, listMir}, listMir)
	concatFn := Function([]Type{listMir, listMir}, listMir)

	acc := emptyCall()
	for _, el := range n.Elements {
		ce, err := lw.lowerExpr(sc, el.Expr)
		if err != nil {
			return nil, err
		}
		var part Expr
		if el.Spread {
			part = ce
		} else {
			part = Call{exprBase{sp}, consFn, Variable{exprBase{sp}, lw.listSymbol(rtListCons)}, []Expr{ce, emptyCall()}}
		}
		acc = Call{exprBase{sp}, concatFn, Variable{exprBase{sp}, lw.listSymbol(rtListConcat)}, []Expr{acc, part}}
	}
	return acc, nil
}

// lowerMapLit follows the same left-to-right rule: a named entry inserts
// (last write wins on a repeated key by ordinary insert semantics), a
// spread merges another map in with right-biased precedence, so an entry
// written after a spread still overrides a key the spread carried.
func (lw *Lowerer) lowerMapLit(sc *scope, n hir.MapLit) (Expr, error) {
	sp := n.Span()
	keyMir, err := compileType(lw.env, n.KeyType, sp)
	if err != nil {
		return nil, err
	}
	valueMir, err := compileType(lw.env, n.ValueType, sp)
	if err != nil {
		return nil, err
	}
	mapMir := compileConcreteMap()
	emptyCall := Call{exprBase{sp}, Function(nil, mapMir), Variable{exprBase{sp}, lw.mapSymbol(rtMapEmpty)}, nil}
	insertFn := Function([]Type{mapMir, keyMir, valueMir}, mapMir)
	mergeFn := Function([]Type{mapMir, mapMir}, mapMir)

	acc := Expr(emptyCall)
	for _, en := range n.Entries {
		if en.Spread {
			ve, err := lw.lowerExpr(sc, en.Value)
			if err != nil {
				return nil, err
			}
			acc = Call{exprBase{sp}, mergeFn, Variable{exprBase{sp}, lw.mapSymbol(rtMapMerge)}, []Expr{acc, ve}}
			continue
		}
		ke, err := lw.lowerExpr(sc, en.Key)
		if err != nil {
			return nil, err
		}
		ve, err := lw.lowerExpr(sc, en.Value)
		if err != nil {
			return nil, err
		}
		acc = Call{exprBase{sp}, insertFn, Variable{exprBase{sp}, lw.mapSymbol(rtMapInsert)}, []Expr{acc, ke, ve}}
	}
	return acc, nil
}

// lowerComprehension lowers to a runtime fold: a freshly-defined folder
// closure concatenates each transformed element onto an accumulator list,
// and source (list or map) plus the folder are handed to the runtime fold
// entry point.
func (lw *Lowerer) lowerComprehension(sc *scope, n hir.ListComprehension) (Expr, error) {
	sp := n.Span()
	source_, err := lw.lowerExpr(sc, n.Source)
	if err != nil {
		return nil, err
	}
	canon, ok := n.InputType.Get()
	if !ok {
		canon = types.Any()
	}

	bsc := newScope(sc)
	var params []Argument
	const accName = "$acc"
	resultListMir := compileConcreteList()
	params = append(params, Argument{accName, resultListMir})

	var sourceMir Type
	switch canon.Kind {
	case types.KMap:
		sourceMir = compileConcreteMap()
		if n.HasKey {
			keyMir, err := compileType(lw.env, *canon.Key, sp)
			if err != nil {
				return nil, err
			}
			bsc.bind(n.KeyName, *canon.Key)
			params = append(params, Argument{n.KeyName, keyMir})
		}
		valueMir, err := compileType(lw.env, *canon.Value, sp)
		if err != nil {
			return nil, err
		}
		bsc.bind(n.ValueName, *canon.Value)
		params = append(params, Argument{n.ValueName, valueMir})
	default:
		sourceMir = compileConcreteList()
		elemSurface := types.Any()
		if canon.Kind == types.KList {
			elemSurface = *canon.Elem
		}
		elemMir, err := compileType(lw.env, elemSurface, sp)
		if err != nil {
			return nil, err
		}
		bsc.bind(n.ValueName, elemSurface)
		params = append(params, Argument{n.ValueName, elemMir})
	}

	elemCompiled, err := lw.lowerExpr(bsc, n.Elem)
	if err != nil {
		return nil, err
	}
	elemT := lw.typeOf(bsc, n.Elem)
	elemMir, err := compileType(lw.env, elemT, sp)
	if err != nil {
		return nil, err
	}
	singleton := Call{exprBase{sp}, Function([]Type{elemMir, resultListMir}, resultListMir),
		Variable{exprBase{sp}, lw.listSymbol(rtListCons)}, []Expr{elemCompiled, Call{exprBase{sp}, Function(nil, resultListMir), Variable{exprBase{sp}, lw.listSymbol(rtListEmpty)}, nil}}}
	folderBody := Call{exprBase{sp}, Function([]Type{resultListMir, resultListMir}, resultListMir),
		Variable{exprBase{sp}, lw.listSymbol(rtListConcat)}, []Expr{Variable{exprBase{sp}, accName}, singleton}}

	const folderName = "$fold_fn"
	folderParamTypes := make([]Type, len(params))
	for i, p := range params {
		folderParamTypes[i] = p.Type
	}
	folderDef := Definition{Name: folderName, Params: params, Body: folderBody, Result: resultListMir}
	folderClosure := LetRecursive{exprBase{sp}, folderDef, Variable{exprBase{sp}, folderName}}

	foldFnType := Function([]Type{sourceMir, resultListMir, Function(folderParamTypes, resultListMir)}, resultListMir)
	emptyAcc := Call{exprBase{sp}, Function(nil, resultListMir), Variable{exprBase{sp}, lw.listSymbol(rtListEmpty)}, nil}
	foldSymbol := lw.listSymbol(rtListFold)
	if canon.Kind == types.KMap {
		foldSymbol = lw.mapSymbol(rtMapFold)
	}
	return Call{exprBase{sp}, foldFnType, Variable{exprBase{sp}, foldSymbol}, []Expr{source_, emptyAcc, folderClosure}}, nil
}

func (lw *Lowerer) lowerThunk(sc *scope, n hir.Thunk) (Expr, error) {
	sp := n.Span()
	inner, err := lw.lowerExpr(sc, n.Inner)
	if err != nil {
		return nil, err
	}
	t, ok := n.Type.Get()
	if !ok {
		t = lw.typeOf(sc, n.Inner)
	}
	mt, err := compileType(lw.env, t, sp)
	if err != nil {
		return nil, err
	}
	def := Definition{Name: thunkName, Params: nil, Body: inner, Result: mt, IsThunk: true}
	return LetRecursive{exprBase{sp}, def, Variable{exprBase{sp}, thunkName}}, nil
}

// lowerTry implements §4.6's Try rule: the TryOperation primitive
// propagates a tagged error, and the surviving success value dispatches
// through the same per-member Alternative set if-type uses.
func (lw *Lowerer) lowerTry(sc *scope, n hir.TryExpr) (Expr, error) {
	sp := n.Span()
	operand, err := lw.lowerExpr(sc, n.Operand)
	if err != nil {
		return nil, err
	}
	errType, err := compileType(lw.env, lw.env.ErrorType(), sp)
	if err != nil {
		return nil, err
	}
	const errName = "$error"
	tryOp := TryOperation{
		exprBase{sp}, operand, errName, errType,
		Variant{exprBase{sp}, errType, Variable{exprBase{sp}, errName}},
	}

	successType, ok := n.Type.Get()
	if !ok {
		successType = types.Any()
	}
	const successName = "$success"
	alts, err := lw.compileAlternatives(successName, successType, Variable{exprBase{sp}, successName}, sp)
	if err != nil {
		return nil, err
	}
	return Case{exprBase{sp}, tryOp, alts, nil}, nil
}

// lowerSpawn implements §4.6's Spawn rule: the spawned lambda's body
// becomes a zero-argument thunk definition, handed to the runtime spawn
// primitive.
func (lw *Lowerer) lowerSpawn(sc *scope, n hir.SpawnExpr) (Expr, error) {
	sp := n.Span()
	inner := newScope(sc)
	body, err := lw.lowerBlock(inner, n.Lambda.Body)
	if err != nil {
		return nil, err
	}
	resultMir, err := compileType(lw.env, n.Lambda.Result, sp)
	if err != nil {
		return nil, err
	}
	thunkDef := Definition{Name: thunkName, Params: nil, Body: body, Result: resultMir, IsThunk: true}
	thunkExpr := LetRecursive{exprBase{sp}, thunkDef, Variable{exprBase{sp}, thunkName}}

	thunkFnType := Function(nil, VariantType())
	spawnFnType := Function([]Type{thunkFnType}, thunkFnType)
	return Call{exprBase{sp}, spawnFnType, Variable{exprBase{sp}, lw.concurrencySymbol(rtSpawn)}, []Expr{thunkExpr}}, nil
}

// lowerCoerce implements §4.6's Coercions rule: an atom wraps directly as
// a tagged variant; a list, map or function wraps its boxed concrete
// representation first (maps generalize the spec's list/function wording,
// see type.go's concreteMapName note). list->list and map->map coercions
// (subtyping on element types) are no-ops: the runtime representation is
// uniform regardless of the static element type.
func (lw *Lowerer) lowerCoerce(sc *scope, n hir.CoerceExpr) (Expr, error) {
	sp := n.Span()
	operand, err := lw.lowerExpr(sc, n.Operand)
	if err != nil {
		return nil, err
	}
	fromT, ok := n.From.Get()
	if !ok {
		fromT = lw.typeOf(sc, n.Operand)
	}
	toT := n.ToDecl
	fromCanon, err := types.Canonicalize(lw.env, fromT, sp)
	if err != nil {
		return nil, err
	}
	toCanon, err := types.Canonicalize(lw.env, toT, sp)
	if err != nil {
		return nil, err
	}

	if fromCanon.Kind == types.KList && toCanon.Kind == types.KList {
		return operand, nil
	}
	if fromCanon.Kind == types.KMap && toCanon.Kind == types.KMap {
		return operand, nil
	}

	if toCanon.Kind != types.KAny && toCanon.Kind != types.KUnion {
		return operand, nil
	}

	switch fromCanon.Kind {
	case types.KList:
		concrete := compileConcreteList()
		return Variant{exprBase{sp}, concrete, operand}, nil
	case types.KMap:
		concrete := compileConcreteMap()
		return Variant{exprBase{sp}, concrete, operand}, nil
	case types.KFunction:
		concrete, err := compileConcreteFunction(lw.env, fromT, sp)
		if err != nil {
			return nil, err
		}
		return Variant{exprBase{sp}, concrete, RecordExpr{exprBase{sp}, concrete, []Expr{operand}}}, nil
	default:
		fromMir, err := compileType(lw.env, fromT, sp)
		if err != nil {
			return nil, err
		}
		return Variant{exprBase{sp}, fromMir, operand}, nil
	}
}
