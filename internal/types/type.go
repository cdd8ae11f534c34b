package types

// Type is a surface type shared by the AST and HIR trees. It is a plain
// value tree rather than an interned handle: the type language has no
// recursive binders and no generics, so structural sharing buys nothing
// that outweighs the clarity of comparing trees directly.
type Type struct {
	Kind Kind

	// Name holds the record or reference identifier for KRecord/KReference.
	Name string

	// Params/Result describe a KFunction: arg types and result type.
	Params []Type
	Result *Type

	// Elem describes a KList's element type.
	Elem *Type

	// Key/Value describe a KMap's key and value types.
	Key   *Type
	Value *Type

	// Members holds a KUnion's members. Populated in canonical form as a
	// flattened, deduplicated set; in surface (pre-canonical) form it holds
	// exactly two members, lhs then rhs, matching the right-associative
	// "T | T" grammar production.
	Members []Type
}

func Any() Type     { return Type{Kind: KAny} }
func Boolean() Type { return Type{Kind: KBoolean} }
func None() Type    { return Type{Kind: KNone} }
func Number() Type  { return Type{Kind: KNumber} }
func String() Type  { return Type{Kind: KString} }

func Reference(name string) Type { return Type{Kind: KReference, Name: name} }
func Record(name string) Type    { return Type{Kind: KRecord, Name: name} }

func List(elem Type) Type {
	e := elem
	return Type{Kind: KList, Elem: &e}
}

func Map(key, value Type) Type {
	k, v := key, value
	return Type{Kind: KMap, Key: &k, Value: &v}
}

func Function(params []Type, result Type) Type {
	r := result
	return Type{Kind: KFunction, Params: append([]Type(nil), params...), Result: &r}
}

func Union(lhs, rhs Type) Type {
	return Type{Kind: KUnion, Members: []Type{lhs, rhs}}
}

func (t Type) String() string {
	switch t.Kind {
	case KAny, KBoolean, KNone, KNumber, KString:
		return t.Kind.String()
	case KRecord, KReference:
		return t.Name
	case KList:
		return "[" + t.Elem.String() + "]"
	case KMap:
		return "{" + t.Key.String() + ":" + t.Value.String() + "}"
	case KFunction:
		s := "\\("
		for i, p := range t.Params {
			if i > 0 {
				s += ", "
			}
			s += p.String()
		}
		return s + ") " + t.Result.String()
	case KUnion:
		s := ""
		for i, m := range t.Members {
			if i > 0 {
				s += " | "
			}
			s += m.String()
		}
		return s
	default:
		return "<invalid>"
	}
}
