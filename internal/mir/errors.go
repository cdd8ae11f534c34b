package mir

import (
	"ember/internal/diag"
	"ember/internal/errors"
	"ember/internal/source"
	"ember/internal/types"
)

// diagUnexpectedKind reports a canonical kind the lowerer has no runtime
// representation for (KReference/KInvalid should never survive
// canonicalization). Surfacing it as TypeNotInferred matches
// expression_compiler.rs, which raises the same error whenever a type
// slot it expects to be resolved turns out not to be.
func diagUnexpectedKind(c types.Type, at source.Span) error {
	return diag.NewError(diag.TypeNotInferred, at, "lowerer has no runtime representation for type "+c.String())
}

func errTypeNotInferred(at source.Span, what string) error {
	return errors.TypeNotInferred(at, what)
}

func errFunctionExpected(at source.Span, got types.Type) error {
	return errors.FunctionExpected(at, got)
}

func errUnknownField(at source.Span, name string) error {
	return errors.RecordFieldUnknown(at, name)
}
