package types

import "ember/internal/source"

// Equal reports whether two surface types denote the same canonical type.
func Equal(env *Env, a, b Type, at source.Span) (bool, error) {
	ca, err := Canonicalize(env, a, at)
	if err != nil {
		return false, err
	}
	cb, err := Canonicalize(env, b, at)
	if err != nil {
		return false, err
	}
	return Identical(ca, cb), nil
}
