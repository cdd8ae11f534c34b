// Package errors binds the error taxonomy to diag.Code: one constructor per
// named kind, each producing a diag.Diagnostic with the wording the taxonomy
// describes. The parser and checker still own their own reporting (each
// reports into its own diag.Bag through its own errorf helper), while the
// inferrer and lowerer return these diagnostics as Go errors; this package
// exists so the *message* for a given kind is written once instead of
// reconstructed ad hoc with fmt.Sprintf at every call site.
package errors

import (
	"fmt"

	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/types"
)

func ParseError(at source.Span, msg string) diag.Diagnostic {
	return diag.NewError(diag.ParseUnexpectedToken, at, msg)
}

func DuplicateRecordField(at source.Span, name string) diag.Diagnostic {
	return diag.NewError(diag.ParseDuplicateRecordField, at, fmt.Sprintf("duplicate record field %q", name))
}

func PrivateExternalModulePath(at source.Span, path string) diag.Diagnostic {
	return diag.NewError(diag.ParsePrivateExternalModule, at, fmt.Sprintf("external module path %q must not reference a private name", path))
}

func ReferenceUnresolved(at source.Span, name string) diag.Diagnostic {
	return diag.NewError(diag.ReferenceUnresolved, at, fmt.Sprintf("unresolved reference %q", name))
}

func AliasCycle(at source.Span, name string) diag.Diagnostic {
	return diag.NewError(diag.AliasCycle, at, fmt.Sprintf("type alias %q resolves to itself", name))
}

func RecordUnknown(at source.Span, name string) diag.Diagnostic {
	return diag.NewError(diag.RecordUnknown, at, fmt.Sprintf("unknown record type %q", name))
}

func RecordFieldUnknown(at source.Span, name string) diag.Diagnostic {
	return diag.NewError(diag.RecordFieldUnknown, at, fmt.Sprintf("unknown record field %q", name))
}

func RecordFieldMissing(at source.Span, name string) diag.Diagnostic {
	return diag.NewError(diag.RecordFieldMissing, at, fmt.Sprintf("missing record field %q", name))
}

// TypesNotMatched reports a subsumption failure: upper does not accept
// lower. declSpan, if non-nil, notes the expected type's declaration site.
func TypesNotMatched(at source.Span, lower, upper types.Type, declSpan *source.Span) diag.Diagnostic {
	d := diag.NewError(diag.TypesNotMatched, at, fmt.Sprintf("type %s does not match expected type %s", lower.String(), upper.String()))
	if declSpan != nil {
		d = d.WithNote(*declSpan, "expected type declared here")
	}
	return d
}

func TypeNotInferred(at source.Span, what string) diag.Diagnostic {
	return diag.NewError(diag.TypeNotInferred, at, "type not inferred: "+what)
}

func FunctionExpected(at source.Span, got types.Type) diag.Diagnostic {
	return diag.NewError(diag.FunctionExpected, at, "call target is not a function, got "+got.String())
}

func WrongArgumentCount(at source.Span, want, got int) diag.Diagnostic {
	return diag.NewError(diag.WrongArgumentCount, at, fmt.Sprintf("expected %d argument(s), got %d", want, got))
}

func VariantExpected(at source.Span, got types.Type) diag.Diagnostic {
	return diag.NewError(diag.VariantExpected, at, "if-type scrutinee must be a union or any, got "+got.String())
}

func AnyTypeBranch(at source.Span) diag.Diagnostic {
	return diag.NewError(diag.AnyTypeBranch, at, "any must be handled by the else branch, not a named branch")
}

func MissingElseBlock(at source.Span) diag.Diagnostic {
	return diag.NewError(diag.MissingElseBlock, at, "if-type is not exhaustive and has no else branch")
}

func TypeNotComparable(at source.Span, left, right types.Type) diag.Diagnostic {
	return diag.NewError(diag.TypeNotComparable, at, fmt.Sprintf("%s and %s are not comparable", left.String(), right.String()))
}

func SpawnOperationArguments(at source.Span) diag.Diagnostic {
	return diag.NewError(diag.SpawnOperationArgument, at, "go applies only to a zero-argument lambda")
}

func VariableNotFound(at source.Span, name string) diag.Diagnostic {
	return diag.NewError(diag.VariableNotFound, at, fmt.Sprintf("undefined variable %q", name))
}

func ListExpected(at source.Span, got types.Type) diag.Diagnostic {
	return diag.NewError(diag.ListExpected, at, "expected a list, got "+got.String())
}

func MapExpected(at source.Span, got types.Type) diag.Diagnostic {
	return diag.NewError(diag.MapExpected, at, "expected a map, got "+got.String())
}
