package hir

import (
	"testing"

	"ember/internal/diag"
	"ember/internal/lexer"
	"ember/internal/parser"
	"ember/internal/source"
)

func parseAndDesugar(t *testing.T, src string, imported map[string]ImportedModule) (*Module, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("t.em", []byte(src))
	bag := diag.NewBag(0)
	lx := lexer.New(fid, fs.Get(fid).Content, diag.BagReporter{Bag: bag})
	mod := parser.ParseModule(lx, diag.BagReporter{Bag: bag}, "t.em")
	if bag.HasErrors() {
		return nil, bag
	}
	if imported == nil {
		imported = map[string]ImportedModule{}
	}
	hmod, err := Desugar(mod, imported)
	if err != nil {
		t.Fatalf("desugar error: %v", err)
	}
	return hmod, bag
}

func TestDesugarPlainFunction(t *testing.T) {
	hmod, bag := parseAndDesugar(t, `f = \(x number) number { x }`, nil)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", bag.Items())
	}
	if len(hmod.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(hmod.Functions))
	}
	fn := hmod.Functions[0]
	if fn.Name != "f" {
		t.Fatalf("unexpected name %q", fn.Name)
	}
	if _, ok := fn.Lambda.Body[0].Expr.(Var); !ok {
		t.Fatalf("expected Var body, got %T", fn.Lambda.Body[0].Expr)
	}
}

func TestDesugarGoExprBecomesSpawn(t *testing.T) {
	hmod, bag := parseAndDesugar(t, `f = \() number { go \() number { 1 } }`, nil)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", bag.Items())
	}
	spawn, ok := hmod.Functions[0].Lambda.Body[0].Expr.(SpawnExpr)
	if !ok {
		t.Fatalf("expected SpawnExpr, got %T", hmod.Functions[0].Lambda.Body[0].Expr)
	}
	if len(spawn.Lambda.Params) != 0 {
		t.Fatalf("expected zero-arity spawned lambda")
	}
}

func TestDesugarEqualityIsDistinctNode(t *testing.T) {
	hmod, bag := parseAndDesugar(t, `f = \(x number, y number) boolean { x == y }`, nil)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", bag.Items())
	}
	eq, ok := hmod.Functions[0].Lambda.Body[0].Expr.(EqualityExpr)
	if !ok {
		t.Fatalf("expected EqualityExpr, got %T", hmod.Functions[0].Lambda.Body[0].Expr)
	}
	if eq.Negate {
		t.Fatalf("expected non-negated equality for ==")
	}
	if eq.Type.IsSome() {
		t.Fatalf("desugarer must leave type slots empty")
	}
}

func TestDesugarNotEqualsNegates(t *testing.T) {
	hmod, bag := parseAndDesugar(t, `f = \(x number, y number) boolean { x != y }`, nil)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", bag.Items())
	}
	eq, ok := hmod.Functions[0].Lambda.Body[0].Expr.(EqualityExpr)
	if !ok || !eq.Negate {
		t.Fatalf("expected negated EqualityExpr, got %+v", hmod.Functions[0].Lambda.Body[0].Expr)
	}
}

func TestDesugarTwoVariableComprehensionUnifiesNode(t *testing.T) {
	hmod, bag := parseAndDesugar(t, `
f = \(m {string:number}) [number] { [number]{v for k, v in m} }
`, nil)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", bag.Items())
	}
	comp, ok := hmod.Functions[0].Lambda.Body[0].Expr.(ListComprehension)
	if !ok {
		t.Fatalf("expected ListComprehension, got %T", hmod.Functions[0].Lambda.Body[0].Expr)
	}
	if !comp.HasKey || comp.KeyName != "k" || comp.ValueName != "v" {
		t.Fatalf("unexpected comprehension binding shape: %+v", comp)
	}
}

func TestDesugarSingleVariableComprehension(t *testing.T) {
	hmod, bag := parseAndDesugar(t, `
f = \(xs [number]) [number] { [number]{x for x in xs} }
`, nil)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", bag.Items())
	}
	comp, ok := hmod.Functions[0].Lambda.Body[0].Expr.(ListComprehension)
	if !ok {
		t.Fatalf("expected ListComprehension, got %T", hmod.Functions[0].Lambda.Body[0].Expr)
	}
	if comp.HasKey || comp.ValueName != "x" {
		t.Fatalf("unexpected single-variable comprehension shape: %+v", comp)
	}
}

func TestDesugarResolvesDefaultImportName(t *testing.T) {
	imported := map[string]ImportedModule{
		"strings": {Path: "strings", PublicNames: []string{"upper"}},
	}
	hmod, bag := parseAndDesugar(t, `
import strings
f = \(s string) string { upper(s) }
`, imported)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", bag.Items())
	}
	call, ok := hmod.Functions[0].Lambda.Body[0].Expr.(Call)
	if !ok {
		t.Fatalf("expected Call, got %T", hmod.Functions[0].Lambda.Body[0].Expr)
	}
	callee, ok := call.Callee.(Var)
	if !ok || callee.Name != "strings'upper" {
		t.Fatalf("expected resolved callee name, got %+v", call.Callee)
	}
}

func TestDesugarResolvesAliasedImportName(t *testing.T) {
	imported := map[string]ImportedModule{
		"strings": {Path: "strings", PublicNames: []string{"upper"}},
	}
	hmod, bag := parseAndDesugar(t, `
import strings as s
f = \(v string) string { s'upper(v) }
`, imported)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", bag.Items())
	}
	call, ok := hmod.Functions[0].Lambda.Body[0].Expr.(Call)
	if !ok {
		t.Fatalf("expected Call, got %T", hmod.Functions[0].Lambda.Body[0].Expr)
	}
	callee, ok := call.Callee.(Var)
	if !ok || callee.Name != "strings'upper" {
		t.Fatalf("expected resolved callee name, got %+v", call.Callee)
	}
}

func TestDesugarRecordUpdatePreservesSpread(t *testing.T) {
	hmod, bag := parseAndDesugar(t, `
type point { x number y number }
move = \(p point) point { point{...p, x: 1} }
`, nil)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", bag.Items())
	}
	lit, ok := hmod.Functions[0].Lambda.Body[0].Expr.(RecordLit)
	if !ok {
		t.Fatalf("expected RecordLit, got %T", hmod.Functions[0].Lambda.Body[0].Expr)
	}
	if !lit.HasSpread || lit.Spread == nil {
		t.Fatalf("expected spread to survive desugaring: %+v", lit)
	}
	if len(lit.Fields) != 1 || lit.Fields[0].Name != "x" {
		t.Fatalf("unexpected fields: %+v", lit.Fields)
	}
}

func TestDesugarUnknownImportLeavesNameUnresolved(t *testing.T) {
	hmod, bag := parseAndDesugar(t, `f = \(x number) number { x }`, map[string]ImportedModule{})
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", bag.Items())
	}
	if _, ok := hmod.Functions[0].Lambda.Body[0].Expr.(Var); !ok {
		t.Fatalf("expected Var")
	}
}
