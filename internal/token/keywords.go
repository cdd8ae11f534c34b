package token

var keywords = map[string]Kind{
	"as":      KwAs,
	"else":    KwElse,
	"export":  KwExport,
	"for":     KwFor,
	"foreign": KwForeign,
	"go":      KwGo,
	"if":      KwIf,
	"in":      KwIn,
	"import":  KwImport,
	"type":    KwType,
	"any":     KwAny,
	"boolean": KwBoolean,
	"false":   KwFalse,
	"none":    KwNone,
	"number":  KwNumber,
	"string":  KwString,
	"true":    KwTrue,
}

// LookupKeyword reports the keyword Kind for an exact identifier spelling,
// or false if lexeme is not reserved.
func LookupKeyword(lexeme string) (Kind, bool) {
	k, ok := keywords[lexeme]
	return k, ok
}
