package compile

import (
	"testing"

	"ember/internal/source"
)

func compileSource(t *testing.T, src string) *Result {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("t.em", []byte(src))
	res, err := Module(fs, fid, "t", Options{})
	if err != nil {
		t.Fatalf("Module returned error: %v", err)
	}
	return res
}

func TestModuleLowersWellTypedFunction(t *testing.T) {
	res := compileSource(t, `f = \(x number) number { x + 1 }`)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	if res.MIR == nil {
		t.Fatal("expected a lowered MIR module")
	}
	if len(res.MIR.Functions) != 1 {
		t.Fatalf("len(Functions) = %d, want 1", len(res.MIR.Functions))
	}
	if got := res.MIR.Functions[0].Name; got != "f" {
		t.Fatalf("Functions[0].Name = %q, want %q", got, "f")
	}
}

func TestModuleStopsAtParseErrors(t *testing.T) {
	res := compileSource(t, `f = \(x number number { x }`)
	if !res.Bag.HasErrors() {
		t.Fatal("expected parse diagnostics")
	}
	if res.MIR != nil {
		t.Fatal("expected no MIR for a parse failure")
	}
}

func TestModuleStopsAtTypeError(t *testing.T) {
	res := compileSource(t, `
id = \(x number) number { x }
f = \() number { id("s") }
`)
	if !res.Bag.HasErrors() {
		t.Fatal("expected a type-check diagnostic")
	}
	if res.MIR != nil {
		t.Fatal("expected no MIR for ill-typed input")
	}
}

func TestModuleUndefinedVariable(t *testing.T) {
	res := compileSource(t, `f = \() number { y }`)
	if !res.Bag.HasErrors() {
		t.Fatal("expected an undefined-variable diagnostic")
	}
	if res.MIR != nil {
		t.Fatal("expected no MIR when inference fails")
	}
}
