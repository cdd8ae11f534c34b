// Package lexer turns source bytes into a stream of token.Token values for
// the parser. Whitespace and line comments ("#…\n") are skipped between
// tokens and never recognized inside string literals.
package lexer

import (
	"fortio.org/safecast"

	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

// Lexer produces tokens for a single file, on demand.
type Lexer struct {
	cur      *cursor
	file     source.FileID
	reporter diag.Reporter
	lastEnd  int // byte offset right after the previously emitted token
	started  bool
}

// New constructs a Lexer over one file's content.
func New(file source.FileID, content []byte, reporter diag.Reporter) *Lexer {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Lexer{cur: newCursor(content), file: file, reporter: reporter}
}

// EmptySpan returns a zero-length span at the current position, used by
// callers needing a placeholder before any token has been read.
func (l *Lexer) EmptySpan() source.Span {
	off := l.offset()
	return source.Span{File: l.file, Start: off, End: off}
}

func (l *Lexer) offset() uint32 {
	off, err := safecast.Conv[uint32](l.cur.pos)
	if err != nil {
		panic(err)
	}
	return off
}

// skipTrivia advances past whitespace and "# ... \n" line comments.
// Returns whether anything was skipped (used to compute Token.Glued).
func (l *Lexer) skipTrivia() bool {
	skipped := false
	for !l.cur.eof() {
		b := l.cur.peek()
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			l.cur.advance()
			skipped = true
		case b == '#':
			for !l.cur.eof() && l.cur.peek() != '\n' {
				l.cur.advance()
			}
			skipped = true
		default:
			return skipped
		}
	}
	return skipped
}

// Next consumes and returns the next token.
func (l *Lexer) Next() token.Token {
	posBeforeTrivia := l.cur.pos
	skipped := l.skipTrivia()
	glued := !skipped && l.started && posBeforeTrivia == l.lastEnd
	l.started = true
	start := l.cur.pos

	if l.cur.eof() {
		return l.emit(token.EOF, start, glued)
	}

	b := l.cur.peek()
	switch {
	case isIdentStart(b):
		text := l.scanIdent()
		kind := token.Ident
		if kw, ok := token.LookupKeyword(text); ok {
			kind = kw
		}
		return l.emitText(kind, start, text, glued)
	case isDigit(b):
		text, ok := l.scanNumber()
		if !ok {
			l.report(diag.LexBadNumber, start, "malformed number literal")
		}
		return l.emitText(token.NumberLit, start, text, glued)
	case b == '"':
		value, terminated := l.scanString()
		if !terminated {
			l.report(diag.LexUnterminatedString, start, "unterminated string literal")
		}
		return l.emitText(token.StringLit, start, value, glued)
	}

	return l.scanOperator(start, glued)
}

func (l *Lexer) emit(kind token.Kind, start int, glued bool) token.Token {
	return l.emitText(kind, start, string(l.cur.src[start:l.cur.pos]), glued)
}

func (l *Lexer) emitText(kind token.Kind, start int, text string, glued bool) token.Token {
	startOff, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(err)
	}
	endOff := l.offset()
	l.lastEnd = l.cur.pos
	return token.Token{
		Kind:  kind,
		Span:  source.Span{File: l.file, Start: startOff, End: endOff},
		Text:  text,
		Glued: glued,
	}
}

func (l *Lexer) report(code diag.Code, start int, msg string) {
	startOff, _ := safecast.Conv[uint32](start)
	l.reporter.Report(diag.NewError(code, source.Span{File: l.file, Start: startOff, End: l.offset()}, msg))
}
