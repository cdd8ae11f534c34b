package sema

import "ember/internal/types"

// scope mirrors internal/infer's binding chain: the checker re-derives
// every subexpression's type under the same kind of environment the
// inferrer used, since HIR only persists the specific slots the lowerer
// needs, not a type on every node.
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
