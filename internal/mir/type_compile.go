package mir

import (
	"ember/internal/source"
	"ember/internal/types"
)

// compileType maps a checked surface type to its runtime representation.
// A union (or any) always becomes a variant: the tag/payload pair is
// carried by the runtime, not by this static type.
func compileType(env *types.Env, t types.Type, at source.Span) (Type, error) {
	c, err := types.Canonicalize(env, t, at)
	if err != nil {
		return Type{}, err
	}
	switch c.Kind {
	case types.KAny, types.KUnion:
		return VariantType(), nil
	case types.KBoolean:
		return Boolean(), nil
	case types.KNone:
		return None(), nil
	case types.KNumber:
		return Number(), nil
	case types.KString:
		return ByteString(), nil
	case types.KRecord:
		return Record(c.Name), nil
	case types.KFunction:
		params := make([]Type, len(c.Params))
		for i, p := range c.Params {
			pt, err := compileType(env, p, at)
			if err != nil {
				return Type{}, err
			}
			params[i] = pt
		}
		result, err := compileType(env, *c.Result, at)
		if err != nil {
			return Type{}, err
		}
		return Function(params, result), nil
	case types.KList:
		return compileConcreteList(), nil
	case types.KMap:
		return compileConcreteMap(), nil
	default:
		return Type{}, diagUnexpectedKind(c, at)
	}
}

// compileConcreteList and compileConcreteMap return the one-field record
// representation every list/map value is boxed into (compileType returns
// it for every list and map type), which also gives the value a runtime
// tag when it is a union member. The field
// itself is untyped from this tree's point of view: the runtime handle is
// opaque, so downstream code only ever reads it back out through
// RecordField at index 0.
func compileConcreteList() Type { return Record(concreteListName) }
func compileConcreteMap() Type  { return Record(concreteMapName) }

// compileConcreteFunction boxes a function value the same way, used when a
// function type appears as a union member (expression_compiler.rs's
// compile_generic_type_alternative does this for Type::Function).
func compileConcreteFunction(env *types.Env, fn types.Type, at source.Span) (Type, error) {
	_, err := compileType(env, fn, at)
	if err != nil {
		return Type{}, err
	}
	return Record(concreteFunctionName), nil
}
