package lexer

import (
	"testing"

	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("t.em", []byte(src))
	bag := diag.NewBag(0)
	lx := New(fid, fs.Get(fid).Content, diag.BagReporter{Bag: bag})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected lexer errors: %+v", bag.Items())
	}
	return toks
}

func TestLexKeywordsAndIdents(t *testing.T) {
	toks := lexAll(t, "import foreign importA")
	want := []token.Kind{token.KwImport, token.KwForeign, token.Ident, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
	if toks[2].Text != "importA" {
		t.Errorf("expected identifier text importA, got %q", toks[2].Text)
	}
}

func TestLexCallVsGroupingGlue(t *testing.T) {
	toks := lexAll(t, "f(x) f (x)")
	// f ( x ) f ( x ) eof
	if !toks[1].Glued {
		t.Fatal("expected '(' glued to 'f' in f(x)")
	}
	if toks[5].Glued {
		t.Fatal("expected '(' NOT glued to 'f' in f (x)")
	}
}

func TestLexNumbers(t *testing.T) {
	toks := lexAll(t, "0b101 0x1F 3.14 42")
	for i, want := range []string{"0b101", "0x1F", "3.14", "42"} {
		if toks[i].Kind != token.NumberLit {
			t.Fatalf("token %d: expected NumberLit, got %v", i, toks[i].Kind)
		}
		if toks[i].Text != want {
			t.Fatalf("token %d: got %q, want %q", i, toks[i].Text, want)
		}
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks := lexAll(t, `"a\nb\x41"`)
	if toks[0].Kind != token.StringLit {
		t.Fatalf("expected StringLit, got %v", toks[0].Kind)
	}
	if toks[0].Text != "a\nbA" {
		t.Fatalf("got %q, want %q", toks[0].Text, "a\nbA")
	}
}

func TestLexCommentSkipped(t *testing.T) {
	toks := lexAll(t, "x # comment\ny")
	if len(toks) != 3 { // x, y, EOF
		t.Fatalf("expected 3 tokens, got %d: %+v", len(toks), toks)
	}
}

func TestLexLambdaArrow(t *testing.T) {
	toks := lexAll(t, `\(x number) number { x }`)
	if toks[0].Kind != token.BackslashLParen {
		t.Fatalf("expected BackslashLParen, got %v", toks[0].Kind)
	}
}
