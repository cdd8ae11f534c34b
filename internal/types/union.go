package types

import "ember/internal/source"

// UnionMembers returns the flat set of members of t's canonical form; a
// singleton slice for a non-union type.
func UnionMembers(env *Env, t Type, at source.Span) ([]Type, error) {
	c, err := Canonicalize(env, t, at)
	if err != nil {
		return nil, err
	}
	return unionMembersOf(c), nil
}

// LUB returns the least upper bound of a and b under Subsumes: the
// narrowest type subsuming both. When neither subsumes the other, the
// result is the canonicalized union of the two.
func LUB(env *Env, a, b Type, at source.Span) (Type, error) {
	aSubB, err := Subsumes(env, a, b, at)
	if err != nil {
		return Type{}, err
	}
	if aSubB {
		return b, nil
	}
	bSubA, err := Subsumes(env, b, a, at)
	if err != nil {
		return Type{}, err
	}
	if bSubA {
		return a, nil
	}
	u := Union(a, b)
	return Canonicalize(env, u, at)
}
