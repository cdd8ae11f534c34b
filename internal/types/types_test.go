package types

import (
	"testing"

	"ember/internal/source"
)

func testEnv() *Env {
	env := NewEnv()
	env.AddRecord(RecordDef{Name: "error", Fields: nil})
	env.AddRecord(RecordDef{Name: "point", Fields: []Field{{Name: "x", Type: Number()}, {Name: "y", Type: Number()}}})
	env.AddAlias(AliasDef{Name: "id", Target: Number()})
	return env
}

func TestCanonicalizeFlattensUnion(t *testing.T) {
	env := testEnv()
	sp := source.Span{}
	u := Union(Number(), Union(String(), Number()))
	c, err := Canonicalize(env, u, sp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Kind != KUnion || len(c.Members) != 2 {
		t.Fatalf("expected flattened 2-member union, got %v", c)
	}
}

func TestCanonicalizeSingletonUnionCollapses(t *testing.T) {
	env := testEnv()
	sp := source.Span{}
	c, err := Canonicalize(env, Union(Number(), Number()), sp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Identical(c, Number()) {
		t.Fatalf("expected singleton collapse to number, got %v", c)
	}
}

func TestCanonicalizeAnyAbsorbs(t *testing.T) {
	env := testEnv()
	sp := source.Span{}
	c, err := Canonicalize(env, Union(Number(), Any()), sp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Kind != KAny {
		t.Fatalf("expected any, got %v", c)
	}
}

func TestCanonicalizeAliasCycle(t *testing.T) {
	env := NewEnv()
	env.AddAlias(AliasDef{Name: "a", Target: Reference("b")})
	env.AddAlias(AliasDef{Name: "b", Target: Reference("a")})
	_, err := Canonicalize(env, Reference("a"), source.Span{})
	if err == nil {
		t.Fatal("expected AliasCycle error")
	}
}

func TestSubsumesAnyIsTop(t *testing.T) {
	env := testEnv()
	sp := source.Span{}
	ok, err := Subsumes(env, Number(), Any(), sp)
	if err != nil || !ok {
		t.Fatalf("expected number <: any, got %v %v", ok, err)
	}
}

func TestSubsumesFunctionContravariant(t *testing.T) {
	env := testEnv()
	sp := source.Span{}
	narrow := Function([]Type{Any()}, Number())
	wide := Function([]Type{Number()}, Number())
	// narrow accepts any argument, so it can be used where wide (accepts
	// only number) is expected: narrow <: wide.
	ok, err := Subsumes(env, narrow, wide, sp)
	if err != nil || !ok {
		t.Fatalf("expected contravariant subsumption to hold, got %v %v", ok, err)
	}
	ok, err = Subsumes(env, wide, narrow, sp)
	if err != nil || ok {
		t.Fatalf("expected reverse subsumption to fail, got %v %v", ok, err)
	}
}

func TestSubsumesRecordsByNameOnly(t *testing.T) {
	env := testEnv()
	env.AddRecord(RecordDef{Name: "other", Fields: []Field{{Name: "x", Type: Number()}, {Name: "y", Type: Number()}}})
	sp := source.Span{}
	ok, err := Subsumes(env, Record("point"), Record("other"), sp)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("structurally identical records with different names must not subsume")
	}
}

func TestResolveRecordFieldsPreservesOrder(t *testing.T) {
	env := testEnv()
	fields, err := ResolveRecordFields(env, Record("point"), source.Span{})
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 2 || fields[0].Name != "x" || fields[1].Name != "y" {
		t.Fatalf("unexpected field order: %+v", fields)
	}
}

func TestLUBProducesUnionWhenNeitherSubsumes(t *testing.T) {
	env := testEnv()
	sp := source.Span{}
	lub, err := LUB(env, Number(), String(), sp)
	if err != nil {
		t.Fatal(err)
	}
	if lub.Kind != KUnion {
		t.Fatalf("expected union lub, got %v", lub)
	}
}

func TestLUBPicksUpperWhenSubsumed(t *testing.T) {
	env := testEnv()
	sp := source.Span{}
	lub, err := LUB(env, Number(), Any(), sp)
	if err != nil {
		t.Fatal(err)
	}
	if lub.Kind != KAny {
		t.Fatalf("expected any, got %v", lub)
	}
}
