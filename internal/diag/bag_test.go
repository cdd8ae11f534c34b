package diag

import (
	"testing"

	"ember/internal/source"
)

func TestBagAddRespectsCapacity(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(ParseUnexpectedToken, source.Span{}, "a")) {
		t.Fatal("expected first Add to succeed")
	}
	if !b.Add(NewError(ParseUnexpectedToken, source.Span{}, "b")) {
		t.Fatal("expected second Add to succeed")
	}
	if b.Add(NewError(ParseUnexpectedToken, source.Span{}, "c")) {
		t.Fatal("expected third Add to be rejected at capacity")
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(0)
	b.Add(New(SevWarning, ParseUnexpectedToken, source.Span{}, "w"))
	if b.HasErrors() {
		t.Fatal("warning-only bag should not HasErrors")
	}
	b.Add(New(SevError, ParseUnexpectedToken, source.Span{}, "e"))
	if !b.HasErrors() {
		t.Fatal("expected HasErrors after adding an error")
	}
}

func TestBagSortOrdersByPositionThenSeverity(t *testing.T) {
	b := NewBag(0)
	far := source.Span{File: 0, Start: 10, End: 12}
	near := source.Span{File: 0, Start: 1, End: 2}
	b.Add(New(SevWarning, ParseUnexpectedToken, far, "far"))
	b.Add(New(SevError, ParseUnexpectedToken, near, "near"))
	b.Sort()
	if b.Items()[0].Message != "near" {
		t.Fatalf("expected near-span diagnostic first, got %q", b.Items()[0].Message)
	}
}

func TestDedupReporterSuppressesDuplicates(t *testing.T) {
	inner := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: inner})
	d := NewError(ParseUnexpectedToken, source.Span{Start: 1, End: 2}, "dup")
	r.Report(d)
	r.Report(d)
	if inner.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after duplicate reports", inner.Len())
	}
}
