// Package token defines the lexical token kinds produced by the lexer.
//
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - A keyword is only recognized when the full identifier it is part of
//     matches exactly; "importable" lexes as one Ident, never as KwImport
//     followed by a suffix.
package token

// Kind categorizes a single token.
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	Ident

	// Keywords.
	KwAs
	KwElse
	KwExport
	KwFor
	KwForeign
	KwGo
	KwIf
	KwIn
	KwImport
	KwType
	KwAny
	KwBoolean
	KwFalse
	KwNone
	KwNumber
	KwString
	KwTrue

	// Literals.
	NumberLit
	StringLit

	// Punctuation & operators.
	Plus             // +
	Minus            // -
	Star             // *
	Slash            // /
	Percent          // %
	Amp              // &
	Pipe             // |
	Bang             // !
	EqEq             // ==
	NotEq            // !=
	Lt               // <
	LtEq             // <=
	Gt               // >
	GtEq             // >=
	Assign           // =
	Question         // ?
	Colon            // :
	Comma            // ,
	Dot              // .
	DotDotDot        // ...
	Backslash        // \
	BackslashLParen  // \(  (lambda / function-type opener)
	LParen           // (
	RParen           // )
	LBrace           // {
	RBrace           // }
	LBracket         // [
	RBracket         // ]
	Tick             // '  (module path separator / qualified ident)
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case EOF:
		return "eof"
	case Ident:
		return "identifier"
	case KwAs:
		return "'as'"
	case KwElse:
		return "'else'"
	case KwExport:
		return "'export'"
	case KwFor:
		return "'for'"
	case KwForeign:
		return "'foreign'"
	case KwGo:
		return "'go'"
	case KwIf:
		return "'if'"
	case KwIn:
		return "'in'"
	case KwImport:
		return "'import'"
	case KwType:
		return "'type'"
	case KwAny:
		return "'any'"
	case KwBoolean:
		return "'boolean'"
	case KwFalse:
		return "'false'"
	case KwNone:
		return "'none'"
	case KwNumber:
		return "'number'"
	case KwString:
		return "'string'"
	case KwTrue:
		return "'true'"
	case NumberLit:
		return "number literal"
	case StringLit:
		return "string literal"
	case Plus:
		return "'+'"
	case Minus:
		return "'-'"
	case Star:
		return "'*'"
	case Slash:
		return "'/'"
	case Percent:
		return "'%'"
	case Amp:
		return "'&'"
	case Pipe:
		return "'|'"
	case Bang:
		return "'!'"
	case EqEq:
		return "'=='"
	case NotEq:
		return "'!='"
	case Lt:
		return "'<'"
	case LtEq:
		return "'<='"
	case Gt:
		return "'>'"
	case GtEq:
		return "'>='"
	case Assign:
		return "'='"
	case Question:
		return "'?'"
	case Colon:
		return "':'"
	case Comma:
		return "','"
	case Dot:
		return "'.'"
	case DotDotDot:
		return "'...'"
	case Backslash:
		return "'\\'"
	case BackslashLParen:
		return "'\\('"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case Tick:
		return "'\\''"
	default:
		return "unknown token"
	}
}

// IsKeyword reports whether the token is a reserved word.
func (k Kind) IsKeyword() bool {
	switch k {
	case KwAs, KwElse, KwExport, KwFor, KwForeign, KwGo, KwIf, KwIn, KwImport, KwType,
		KwAny, KwBoolean, KwFalse, KwNone, KwNumber, KwString, KwTrue:
		return true
	default:
		return false
	}
}
