package diagfmt

import (
	"golang.org/x/text/width"

	"ember/internal/source"
)

// visualWidthUpTo computes the on-screen column for a byte offset within a
// line, folding fullwidth/wide runes to width 2 so the caret under a
// diagnostic's span lines up even with East Asian source text.
func visualWidthUpTo(line string, byteCol uint32, tabWidth int) int {
	if byteCol <= 1 {
		return 0
	}
	bytePos := 0
	visual := 0
	for _, r := range line {
		if bytePos >= int(byteCol-1) {
			break
		}
		switch {
		case r == '\t':
			visual = (visual + tabWidth) / tabWidth * tabWidth
		case isWideRune(r):
			visual += 2
		default:
			visual++
		}
		bytePos += len(string(r))
	}
	return visual
}

func isWideRune(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	default:
		return false
	}
}

// sourceLine returns the text of a 1-based line number, without its
// trailing newline.
func sourceLine(f *source.File, line uint32) string {
	if line == 0 {
		return ""
	}
	return f.GetLine(line)
}
