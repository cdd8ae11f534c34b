package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"ember/internal/diag"
	"ember/internal/source"
)

func TestPrettyRendersMessageAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual("t.em", []byte("let x = 1\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.TypesNotMatched, source.Span{File: fid, Start: 8, End: 9}, "boom"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: false, PathMode: PathModeBasename})

	out := buf.String()
	if !strings.Contains(out, "boom") {
		t.Fatalf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected caret underline in output, got %q", out)
	}
}
