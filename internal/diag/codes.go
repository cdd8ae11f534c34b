package diag

import "fmt"

// Code identifies the kind of a diagnostic. Grouped by pass the way the
// numbering scheme separates lexical/syntax/semantic diagnostics, so a
// glance at the leading digit says which component raised it.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000s).
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Parse (2000s).
	ParseUnexpectedToken       Code = 2001
	ParseUnclosedDelimiter     Code = 2002
	ParseDuplicateRecordField  Code = 2003
	ParsePrivateExternalModule Code = 2004
	ParseV2OnlySyntax          Code = 2005
	ParseEmptySpreadRecord     Code = 2006

	// Reference & module resolution (3000s).
	ReferenceUnresolved Code = 3001
	AliasCycle          Code = 3002
	RecordUnknown        Code = 3003
	RecordFieldUnknown   Code = 3004
	RecordFieldMissing   Code = 3005
	VariableNotFound     Code = 3006

	// Type checking (4000s).
	TypesNotMatched        Code = 4001
	TypeNotInferred        Code = 4002
	FunctionExpected       Code = 4003
	WrongArgumentCount     Code = 4004
	VariantExpected        Code = 4005
	AnyTypeBranch          Code = 4006
	MissingElseBlock       Code = 4007
	TypeNotComparable      Code = 4008
	SpawnOperationArgument Code = 4009
	ListExpected           Code = 4010
	MapExpected            Code = 4011
)

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "E0000"
	case LexUnknownChar:
		return "LexUnknownChar"
	case LexUnterminatedString:
		return "LexUnterminatedString"
	case LexBadNumber:
		return "LexBadNumber"
	case ParseUnexpectedToken:
		return "ParseUnexpectedToken"
	case ParseUnclosedDelimiter:
		return "ParseUnclosedDelimiter"
	case ParseDuplicateRecordField:
		return "ParseDuplicateRecordField"
	case ParsePrivateExternalModule:
		return "ParsePrivateExternalModule"
	case ParseV2OnlySyntax:
		return "ParseV2OnlySyntax"
	case ParseEmptySpreadRecord:
		return "ParseEmptySpreadRecord"
	case ReferenceUnresolved:
		return "ReferenceUnresolved"
	case AliasCycle:
		return "AliasCycle"
	case RecordUnknown:
		return "RecordUnknown"
	case RecordFieldUnknown:
		return "RecordFieldUnknown"
	case RecordFieldMissing:
		return "RecordFieldMissing"
	case VariableNotFound:
		return "VariableNotFound"
	case TypesNotMatched:
		return "TypesNotMatched"
	case TypeNotInferred:
		return "TypeNotInferred"
	case FunctionExpected:
		return "FunctionExpected"
	case WrongArgumentCount:
		return "WrongArgumentCount"
	case VariantExpected:
		return "VariantExpected"
	case AnyTypeBranch:
		return "AnyTypeBranch"
	case MissingElseBlock:
		return "MissingElseBlock"
	case TypeNotComparable:
		return "TypeNotComparable"
	case SpawnOperationArgument:
		return "SpawnOperationArguments"
	case ListExpected:
		return "ListExpected"
	case MapExpected:
		return "MapExpected"
	default:
		return fmt.Sprintf("Code(%d)", uint16(c))
	}
}
