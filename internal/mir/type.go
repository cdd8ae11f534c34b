// Package mir defines the closed, runtime-facing tree the HIR lowerer
// (Lowerer.LowerModule, in lower.go) produces: every value has exactly one of a small
// fixed set of runtime representations, and every union member that is
// not itself a primitive or a nominal record has been wrapped in a
// synthetic "concrete" record so that variant tagging has something
// uniform to point at.
package mir

// Kind classifies a Type by its runtime representation rather than its
// surface shape: a list or map is always carried as a one-field Record at
// this level (see compileType), and a function keeps KFunction except as a
// union member, where it is boxed as a one-field Record too (see
// compileConcreteFunction).
type Kind uint8

const (
	KInvalid Kind = iota
	KBoolean
	KNone
	KNumber
	KByteString
	KVariant
	KFunction
	KRecord
)

func (k Kind) String() string {
	switch k {
	case KBoolean:
		return "boolean"
	case KNone:
		return "none"
	case KNumber:
		return "number"
	case KByteString:
		return "string"
	case KVariant:
		return "variant"
	case KFunction:
		return "function"
	case KRecord:
		return "record"
	default:
		return "invalid"
	}
}

// Type is a runtime type: a plain value tree, the same style internal/types
// uses and for the same reason (no recursion through names, no generics).
type Type struct {
	Kind Kind

	// Params/Result describe a KFunction.
	Params []Type
	Result *Type

	// Name identifies a KRecord: either a user-defined record name, or one
	// of the synthetic concrete-wrapper names (concreteListName,
	// concreteMapName, concreteFunctionName) produced when a list, map or
	// function value must be boxed for union membership.
	Name string
}

func Boolean() Type    { return Type{Kind: KBoolean} }
func None() Type       { return Type{Kind: KNone} }
func Number() Type     { return Type{Kind: KNumber} }
func ByteString() Type { return Type{Kind: KByteString} }
func VariantType() Type { return Type{Kind: KVariant} }

func Function(params []Type, result Type) Type {
	r := result
	return Type{Kind: KFunction, Params: append([]Type(nil), params...), Result: &r}
}

func Record(name string) Type { return Type{Kind: KRecord, Name: name} }

func (t Type) String() string {
	switch t.Kind {
	case KBoolean, KNone, KNumber, KByteString, KVariant:
		return t.Kind.String()
	case KRecord:
		return t.Name
	case KFunction:
		s := "\\("
		for i, p := range t.Params {
			if i > 0 {
				s += ", "
			}
			s += p.String()
		}
		return s + ") " + t.Result.String()
	default:
		return "<invalid>"
	}
}

// Synthetic record names wrapping the "generic" representations: a list,
// a map and a function are all opaque runtime handles, so the only way to
// give them a tag when they sit inside a union is to box them as a
// single-field record first. Grounded on expression_compiler.rs's
// compile_generic_type_alternative, which does the same for Function and
// List; we additionally box Map the same way (the surface spec is silent
// on maps-as-union-members, but a map is exactly as opaque as a list at
// runtime, so the same boxing applies).
const (
	concreteListName     = "$list"
	concreteMapName      = "$map"
	concreteFunctionName = "$function"
)
