package sema

import (
	"testing"

	"ember/internal/diag"
	"ember/internal/hir"
	"ember/internal/infer"
	"ember/internal/lexer"
	"ember/internal/parser"
	"ember/internal/source"
)

func checkSource(t *testing.T, src string) *diag.Bag {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("t.em", []byte(src))
	bag := diag.NewBag(0)
	lx := lexer.New(fid, fs.Get(fid).Content, diag.BagReporter{Bag: bag})
	mod := parser.ParseModule(lx, diag.BagReporter{Bag: bag}, "t.em")
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", bag.Items())
	}
	env := hir.CollectEnv(mod, "error")
	hmod, err := hir.Desugar(mod, nil)
	if err != nil {
		t.Fatalf("desugar error: %v", err)
	}
	inferred, err := infer.New(env).InferModule(hmod, nil)
	if err != nil {
		t.Fatalf("infer error: %v", err)
	}
	checkBag := diag.NewBag(0)
	New(env, diag.BagReporter{Bag: checkBag}).CheckModule(inferred, nil)
	return checkBag
}

func TestCheckWellTypedFunctionPasses(t *testing.T) {
	bag := checkSource(t, `f = \(x number) number { x }`)
	if bag.HasErrors() {
		t.Fatalf("unexpected check errors: %+v", bag.Items())
	}
}

func TestCheckCallArgumentCountMismatch(t *testing.T) {
	bag := checkSource(t, `
id = \(x number) number { x }
f = \() number { id(1, 2) }
`)
	assertHasCode(t, bag, diag.WrongArgumentCount)
}

func TestCheckCallArgumentTypeMismatch(t *testing.T) {
	bag := checkSource(t, `
id = \(x number) number { x }
f = \() number { id("s") }
`)
	assertHasCode(t, bag, diag.TypesNotMatched)
}

func TestCheckRecordConstructionMissingField(t *testing.T) {
	bag := checkSource(t, `
type point { x number y number }
make = \() point { point{x: 1} }
`)
	assertHasCode(t, bag, diag.RecordFieldMissing)
}

func TestCheckRecordConstructionUnknownField(t *testing.T) {
	bag := checkSource(t, `
type point { x number y number }
make = \() point { point{x: 1, y: 2, z: 3} }
`)
	assertHasCode(t, bag, diag.RecordFieldUnknown)
}

func TestCheckRecordUpdateAllowsSubset(t *testing.T) {
	bag := checkSource(t, `
type point { x number y number }
move = \(p point) point { point{...p, x: 1} }
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected check errors: %+v", bag.Items())
	}
}

func TestCheckEqualityDisjointTypesRejected(t *testing.T) {
	bag := checkSource(t, `
type point { x number y number }
f = \(p point, n number) boolean { p == n }
`)
	assertHasCode(t, bag, diag.TypeNotComparable)
}

func TestCheckSpawnRejectsNonZeroArity(t *testing.T) {
	bag := checkSource(t, `f = \() number { go \(x number) number { x } }`)
	assertHasCode(t, bag, diag.SpawnOperationArgument)
}

func TestCheckIfTypeRejectsAnyBranch(t *testing.T) {
	bag := checkSource(t, `
f = \(x number | string) number { if y = x as any { 0 } else { 1 } }
`)
	assertHasCode(t, bag, diag.AnyTypeBranch)
}

func TestCheckIfTypeMissingElseRequiresExhaustiveness(t *testing.T) {
	bag := checkSource(t, `
f = \(x number | string) number { if y = x as number { y } }
`)
	assertHasCode(t, bag, diag.MissingElseBlock)
}

func TestCheckTryOperandMustContainErrorType(t *testing.T) {
	bag := checkSource(t, `
type error {}
f = \(x number) number | error { x? }
`)
	assertHasCode(t, bag, diag.TypesNotMatched)
}

func assertHasCode(t *testing.T, bag *diag.Bag, code diag.Code) {
	t.Helper()
	for _, d := range bag.Items() {
		if d.Code == code {
			return
		}
	}
	t.Fatalf("expected a diagnostic with code %s, got: %+v", code, bag.Items())
}
