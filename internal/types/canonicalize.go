package types

import (
	"ember/internal/diag"
	"ember/internal/source"
)

// Canonicalize resolves references through aliases (rejecting cycles),
// flattens nested unions into a deduplicated set, and absorbs any member
// into a bare `any`. A canonicalized union of size one collapses to its
// sole element.
func Canonicalize(env *Env, t Type, at source.Span) (Type, error) {
	return canon(env, t, at, nil)
}

func canon(env *Env, t Type, at source.Span, visiting []string) (Type, error) {
	switch t.Kind {
	case KReference:
		for _, v := range visiting {
			if v == t.Name {
				return Type{}, diag.NewError(diag.AliasCycle, at, "type alias \""+t.Name+"\" refers to itself")
			}
		}
		if alias, ok := env.LookupAlias(t.Name); ok {
			return canon(env, alias.Target, at, append(visiting, t.Name))
		}
		if _, ok := env.LookupRecord(t.Name); ok {
			return Type{Kind: KRecord, Name: t.Name}, nil
		}
		return Type{}, diag.NewError(diag.ReferenceUnresolved, at, "unresolved type reference \""+t.Name+"\"")

	case KList:
		elem, err := canon(env, *t.Elem, at, visiting)
		if err != nil {
			return Type{}, err
		}
		return List(elem), nil

	case KMap:
		key, err := canon(env, *t.Key, at, visiting)
		if err != nil {
			return Type{}, err
		}
		value, err := canon(env, *t.Value, at, visiting)
		if err != nil {
			return Type{}, err
		}
		return Map(key, value), nil

	case KFunction:
		params := make([]Type, len(t.Params))
		for i, p := range t.Params {
			cp, err := canon(env, p, at, visiting)
			if err != nil {
				return Type{}, err
			}
			params[i] = cp
		}
		result, err := canon(env, *t.Result, at, visiting)
		if err != nil {
			return Type{}, err
		}
		return Function(params, result), nil

	case KUnion:
		var members []Type
		isAny := false
		for _, m := range t.Members {
			cm, err := canon(env, m, at, visiting)
			if err != nil {
				return Type{}, err
			}
			if cm.Kind == KAny {
				isAny = true
				continue
			}
			if cm.Kind == KUnion {
				members = appendUniqueAll(members, cm.Members)
			} else {
				members = appendUnique(members, cm)
			}
		}
		if isAny {
			return Any(), nil
		}
		if len(members) == 1 {
			return members[0], nil
		}
		return Type{Kind: KUnion, Members: members}, nil

	default:
		return t, nil
	}
}

func appendUnique(members []Type, t Type) []Type {
	for _, m := range members {
		if Identical(m, t) {
			return members
		}
	}
	return append(members, t)
}

func appendUniqueAll(members []Type, more []Type) []Type {
	for _, t := range more {
		members = appendUnique(members, t)
	}
	return members
}

// Identical compares two already-canonical types structurally.
func Identical(a, b Type) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KRecord, KReference:
		return a.Name == b.Name
	case KList:
		return Identical(*a.Elem, *b.Elem)
	case KMap:
		return Identical(*a.Key, *b.Key) && Identical(*a.Value, *b.Value)
	case KFunction:
		if len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !Identical(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return Identical(*a.Result, *b.Result)
	case KUnion:
		if len(a.Members) != len(b.Members) {
			return false
		}
		for _, m := range a.Members {
			found := false
			for _, n := range b.Members {
				if Identical(m, n) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	default:
		return true
	}
}
