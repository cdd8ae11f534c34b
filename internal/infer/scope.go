package infer

import "ember/internal/types"

// scope is a chain of variable bindings, one link per lambda/branch/let
// that introduces names; lookup walks outward to the nearest binder.
type scope struct {
	parent *scope
	vars   map[string]types.Type
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, vars: make(map[string]types.Type)}
}

func (s *scope) bind(name string, t types.Type) { s.vars[name] = t }

func (s *scope) lookup(name string) (types.Type, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if t, ok := cur.vars[name]; ok {
			return t, true
		}
	}
	return types.Type{}, false
}
