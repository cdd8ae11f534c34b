// Package diag defines the diagnostic data model shared by every pass of
// the compiler core: parser, desugarer, inferrer, checker and lowerer all
// report failure by appending a *Diagnostic to a Bag rather than returning
// a bare error.
package diag

import "ember/internal/source"

// Note provides auxiliary context for a diagnostic, e.g. pointing at the
// declaration site of an expected type.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic captures a single issue.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// Error implements the error interface so a Diagnostic can be returned and
// handled through ordinary Go error-handling alongside being reported into
// a Bag.
func (d Diagnostic) Error() string {
	return d.Code.String() + ": " + d.Message
}
