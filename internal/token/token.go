package token

import "ember/internal/source"

// Token represents a single lexical token with its source location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// Glued reports whether this token immediately follows its predecessor
	// with no intervening whitespace/comment — used to disambiguate call
	// parentheses ("f(x)") from grouping parentheses ("f (x)"), and
	// "Ident{" record literals from block braces.
	Glued bool
}

func (t Token) IsLiteral() bool {
	return t.Kind == NumberLit || t.Kind == StringLit || t.Kind == KwTrue || t.Kind == KwFalse || t.Kind == KwNone
}
