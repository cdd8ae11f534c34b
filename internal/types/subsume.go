package types

import "ember/internal/source"

// Subsumes reports whether lower <: upper, i.e. every value of lower's
// type is a value of upper's type.
//
//   - T <: any for all T.
//   - T <: T reflexively on canonical form.
//   - A <: B, both unions, iff every member of A is subsumed by some
//     member of B.
//   - function(A1.., R1) <: function(A2.., R2) iff arities match, each
//     A2i <: A1i (contravariant in arguments) and R1 <: R2 (covariant in
//     result).
//   - list(A) <: list(B) iff A <: B; map is pointwise the same way.
//   - Records are nominal: only equal names subsume.
func Subsumes(env *Env, lower, upper Type, at source.Span) (bool, error) {
	cl, err := Canonicalize(env, lower, at)
	if err != nil {
		return false, err
	}
	cu, err := Canonicalize(env, upper, at)
	if err != nil {
		return false, err
	}
	return subsumesCanonical(env, cl, cu, at)
}

func subsumesCanonical(env *Env, lower, upper Type, at source.Span) (bool, error) {
	if upper.Kind == KAny {
		return true, nil
	}
	if upper.Kind == KUnion {
		lowerMembers := unionMembersOf(lower)
		for _, lm := range lowerMembers {
			ok, err := subsumedBySomeMember(env, lm, upper.Members, at)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	}
	if lower.Kind == KUnion {
		// A union can only subsume a non-union upper if it has one member,
		// which canonicalization already collapsed away; a multi-member
		// union never subsumes a single concrete type.
		return false, nil
	}

	if lower.Kind != upper.Kind {
		return false, nil
	}

	switch lower.Kind {
	case KRecord:
		return lower.Name == upper.Name, nil
	case KList:
		return subsumesCanonical(env, *lower.Elem, *upper.Elem, at)
	case KMap:
		keyOK, err := subsumesCanonical(env, *lower.Key, *upper.Key, at)
		if err != nil || !keyOK {
			return false, err
		}
		return subsumesCanonical(env, *lower.Value, *upper.Value, at)
	case KFunction:
		if len(lower.Params) != len(upper.Params) {
			return false, nil
		}
		for i := range lower.Params {
			// contravariant: upper's param must subsume lower's param.
			ok, err := subsumesCanonical(env, upper.Params[i], lower.Params[i], at)
			if err != nil || !ok {
				return false, err
			}
		}
		return subsumesCanonical(env, *lower.Result, *upper.Result, at)
	default:
		return true, nil // both are the same non-composite kind (boolean/none/number/string)
	}
}

func subsumedBySomeMember(env *Env, t Type, members []Type, at source.Span) (bool, error) {
	for _, m := range members {
		ok, err := subsumesCanonical(env, t, m, at)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func unionMembersOf(t Type) []Type {
	if t.Kind == KUnion {
		return t.Members
	}
	return []Type{t}
}
