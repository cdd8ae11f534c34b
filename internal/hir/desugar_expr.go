package hir

import (
	"fmt"

	"ember/internal/ast"
)

func (d *Desugarer) desugarLambda(l *ast.Lambda) (*Lambda, error) {
	params := make([]Param, len(l.Params))
	for i, p := range l.Params {
		params[i] = Param{Name: p.Name, Type: p.Type}
	}
	body, err := d.desugarBlock(l.Body)
	if err != nil {
		return nil, err
	}
	return &Lambda{exprBase: exprBase{Sp: l.Span()}, Params: params, Result: l.Result, Body: body}, nil
}

func (d *Desugarer) desugarBlock(stmts []ast.Stmt) ([]Stmt, error) {
	out := make([]Stmt, len(stmts))
	for i, s := range stmts {
		e, err := d.desugarExpr(s.Expr)
		if err != nil {
			return nil, err
		}
		out[i] = Stmt{Bound: s.Bound, Name: s.Name, Expr: e, Type: noneType(), Sp: s.Sp}
	}
	return out, nil
}

func (d *Desugarer) desugarExprs(exprs []ast.Expr) ([]Expr, error) {
	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		de, err := d.desugarExpr(e)
		if err != nil {
			return nil, err
		}
		out[i] = de
	}
	return out, nil
}

// desugarExpr expands every surface sugar and writes empty type slots.
// Every expression form spec.md §3.4 names is handled here; falling
// through to the default case is a desugarer bug, not a user error.
func (d *Desugarer) desugarExpr(e ast.Expr) (Expr, error) {
	switch n := e.(type) {
	case ast.BoolLit:
		return BoolLit{exprBase{n.Span()}, n.Value}, nil
	case ast.NumberLit:
		return NumberLit{exprBase{n.Span()}, n.Text}, nil
	case ast.StringLit:
		return StringLit{exprBase{n.Span()}, n.Value}, nil
	case ast.NoneLit:
		return NoneLit{exprBase{n.Span()}}, nil
	case ast.Var:
		return Var{exprBase{n.Span()}, d.resolveName(n.Name)}, nil
	case *ast.Lambda:
		return d.desugarLambda(n)
	case ast.Call:
		callee, err := d.desugarExpr(n.Callee)
		if err != nil {
			return nil, err
		}
		args, err := d.desugarExprs(n.Args)
		if err != nil {
			return nil, err
		}
		return Call{exprBase: exprBase{n.Span()}, Callee: callee, Args: args, FunctionType: noneType()}, nil
	case ast.FieldAccess:
		recv, err := d.desugarExpr(n.Recv)
		if err != nil {
			return nil, err
		}
		return FieldAccess{exprBase{n.Span()}, recv, n.Name}, nil
	case ast.UnaryExpr:
		operand, err := d.desugarExpr(n.Operand)
		if err != nil {
			return nil, err
		}
		return UnaryExpr{exprBase{n.Span()}, UnaryOp(n.Op), operand}, nil
	case ast.BinaryExpr:
		return d.desugarBinary(n)
	case ast.RecordLit:
		return d.desugarRecordLit(n)
	case ast.IfExpr:
		return d.desugarIf(n)
	case ast.IfTypeExpr:
		return d.desugarIfType(n)
	case ast.IfListExpr:
		return d.desugarIfList(n)
	case ast.IfMapExpr:
		return d.desugarIfMap(n)
	case ast.ListLit:
		return d.desugarListLit(n)
	case ast.MapLit:
		return d.desugarMapLit(n)
	case ast.ListComprehension:
		return d.desugarComprehension(n)
	case ast.GoExpr:
		lambda, err := d.desugarLambda(n.Lambda)
		if err != nil {
			return nil, err
		}
		return SpawnExpr{exprBase{n.Span()}, lambda}, nil
	case ast.TryExpr:
		operand, err := d.desugarExpr(n.Operand)
		if err != nil {
			return nil, err
		}
		return TryExpr{exprBase: exprBase{n.Span()}, Operand: operand, Type: noneType()}, nil
	case ast.CoerceExpr:
		operand, err := d.desugarExpr(n.Operand)
		if err != nil {
			return nil, err
		}
		return CoerceExpr{exprBase: exprBase{n.Span()}, Operand: operand, From: noneType(), To: noneType(), ToDecl: n.To}, nil
	default:
		return nil, fmt.Errorf("hir: desugarer has no case for %T", e)
	}
}

func (d *Desugarer) desugarBinary(n ast.BinaryExpr) (Expr, error) {
	left, err := d.desugarExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := d.desugarExpr(n.Right)
	if err != nil {
		return nil, err
	}
	if n.Op == ast.Eq || n.Op == ast.NotEq {
		return EqualityExpr{exprBase: exprBase{n.Span()}, Negate: n.Op == ast.NotEq, Left: left, Right: right, Type: noneType()}, nil
	}
	return BinaryExpr{exprBase{n.Span()}, binOpMap[n.Op], left, right}, nil
}

var binOpMap = map[ast.BinaryOp]BinaryOp{
	ast.Or:  Or,
	ast.And: And,
	ast.Lt:  Lt, ast.LtEq: LtEq, ast.Gt: Gt, ast.GtEq: GtEq,
	ast.Add: Add, ast.Sub: Sub, ast.Mul: Mul, ast.Div: Div, ast.Mod: Mod,
}

func (d *Desugarer) desugarRecordLit(n ast.RecordLit) (Expr, error) {
	fields := make([]RecordFieldInit, len(n.Fields))
	for i, f := range n.Fields {
		fe, err := d.desugarExpr(f.Expr)
		if err != nil {
			return nil, err
		}
		fields[i] = RecordFieldInit{Name: f.Name, Expr: fe}
	}
	var spread Expr
	if n.Spread != nil {
		var err error
		spread, err = d.desugarExpr(n.Spread)
		if err != nil {
			return nil, err
		}
	}
	return RecordLit{
		exprBase:  exprBase{n.Span()},
		TypeName:  n.TypeName,
		Spread:    spread,
		HasSpread: n.Spread != nil,
		Fields:    fields,
	}, nil
}

func (d *Desugarer) desugarIf(n ast.IfExpr) (Expr, error) {
	cond, err := d.desugarExpr(n.Cond)
	if err != nil {
		return nil, err
	}
	then, err := d.desugarBlock(n.Then)
	if err != nil {
		return nil, err
	}
	els, err := d.desugarBlock(n.Else)
	if err != nil {
		return nil, err
	}
	return IfExpr{exprBase{n.Span()}, cond, then, els}, nil
}

func (d *Desugarer) desugarIfType(n ast.IfTypeExpr) (Expr, error) {
	scrutinee, err := d.desugarExpr(n.Scrutinee)
	if err != nil {
		return nil, err
	}
	branches := make([]IfTypeBranch, len(n.Branches))
	for i, b := range n.Branches {
		body, err := d.desugarBlock(b.Body)
		if err != nil {
			return nil, err
		}
		branches[i] = IfTypeBranch{Name: b.Name, Type: b.Type, Body: body}
	}
	var els []Stmt
	if n.HasElse {
		els, err = d.desugarBlock(n.Else)
		if err != nil {
			return nil, err
		}
	}
	return IfTypeExpr{exprBase{n.Span()}, scrutinee, branches, els, n.HasElse}, nil
}

func (d *Desugarer) desugarIfList(n ast.IfListExpr) (Expr, error) {
	list, err := d.desugarExpr(n.List)
	if err != nil {
		return nil, err
	}
	then, err := d.desugarBlock(n.Then)
	if err != nil {
		return nil, err
	}
	els, err := d.desugarBlock(n.Else)
	if err != nil {
		return nil, err
	}
	return IfListExpr{
		exprBase: exprBase{n.Span()},
		HeadName: n.HeadName, TailName: n.TailName,
		List: list, Then: then, Else: els,
		ElementType: noneType(),
	}, nil
}

func (d *Desugarer) desugarIfMap(n ast.IfMapExpr) (Expr, error) {
	m, err := d.desugarExpr(n.Map)
	if err != nil {
		return nil, err
	}
	key, err := d.desugarExpr(n.Key)
	if err != nil {
		return nil, err
	}
	then, err := d.desugarBlock(n.Then)
	if err != nil {
		return nil, err
	}
	els, err := d.desugarBlock(n.Else)
	if err != nil {
		return nil, err
	}
	return IfMapExpr{
		exprBase: exprBase{n.Span()},
		Name:     n.Name, Map: m, Key: key, Then: then, Else: els,
		KeyType: noneType(), ValueType: noneType(),
	}, nil
}

func (d *Desugarer) desugarListLit(n ast.ListLit) (Expr, error) {
	elems := make([]ListElement, len(n.Elements))
	for i, el := range n.Elements {
		e, err := d.desugarExpr(el.Expr)
		if err != nil {
			return nil, err
		}
		elems[i] = ListElement{Expr: e, Spread: el.Spread}
	}
	return ListLit{exprBase{n.Span()}, n.ElemType, elems}, nil
}

func (d *Desugarer) desugarMapLit(n ast.MapLit) (Expr, error) {
	entries := make([]MapEntry, len(n.Entries))
	for i, en := range n.Entries {
		var key Expr
		var err error
		if en.Key != nil {
			key, err = d.desugarExpr(en.Key)
			if err != nil {
				return nil, err
			}
		}
		value, err := d.desugarExpr(en.Value)
		if err != nil {
			return nil, err
		}
		entries[i] = MapEntry{Key: key, Value: value, Spread: en.Spread}
	}
	return MapLit{exprBase{n.Span()}, n.KeyType, n.ValueType, entries}, nil
}

// desugarComprehension unifies the two-variable form into the same node
// as the single-variable form (no separate map-iteration node).
func (d *Desugarer) desugarComprehension(n ast.ListComprehension) (Expr, error) {
	elem, err := d.desugarExpr(n.Elem)
	if err != nil {
		return nil, err
	}
	source, err := d.desugarExpr(n.Source)
	if err != nil {
		return nil, err
	}
	if n.HasValue {
		return ListComprehension{
			exprBase: exprBase{n.Span()}, Elem: elem,
			KeyName: n.Name, HasKey: true, ValueName: n.ValueName,
			Source: source, InputType: noneType(),
		}, nil
	}
	return ListComprehension{
		exprBase: exprBase{n.Span()}, Elem: elem,
		ValueName: n.Name, Source: source, InputType: noneType(),
	}, nil
}
