package types

import (
	"ember/internal/diag"
	"ember/internal/source"
)

// ResolveRecordFields canonicalizes t until a record name is obtained,
// then returns that record's ordered field list.
func ResolveRecordFields(env *Env, t Type, at source.Span) ([]Field, error) {
	c, err := Canonicalize(env, t, at)
	if err != nil {
		return nil, err
	}
	if c.Kind != KRecord {
		return nil, diag.NewError(diag.RecordUnknown, at, "expected a record type, got "+c.String())
	}
	def, ok := env.LookupRecord(c.Name)
	if !ok {
		return nil, diag.NewError(diag.RecordUnknown, at, "unknown record \""+c.Name+"\"")
	}
	return def.Fields, nil
}

// FieldIndex returns the canonical (declaration-order) index of name
// within fields, or -1 if absent.
func FieldIndex(fields []Field, name string) int {
	for i, f := range fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
