// Package sema verifies a fully-inferred hir.Module: every subsumption
// obligation the inferrer left unchecked is enforced here, against the
// same record/alias environment inference ran under. Checking never
// mutates the tree; it only reports diagnostics.
package sema

import (
	"fmt"

	"ember/internal/diag"
	"ember/internal/hir"
	"ember/internal/source"
	"ember/internal/types"
)

// Checker verifies an already-inferred module.
type Checker struct {
	env      *types.Env
	reporter diag.Reporter
}

func New(env *types.Env, reporter diag.Reporter) *Checker {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Checker{env: env, reporter: reporter}
}

// CheckModule walks every function body, reporting every violation found
// rather than stopping at the first (the surface-level analogue of the
// parser's error recovery). signatures supplies declared types for names
// this module's bodies may call but does not itself define.
func (c *Checker) CheckModule(mod *hir.Module, signatures map[string]types.Type) {
	root := newScope(nil)
	for name, t := range signatures {
		root.bind(name, t)
	}
	for _, fn := range mod.Functions {
		params := make([]types.Type, len(fn.Lambda.Params))
		for i, p := range fn.Lambda.Params {
			params[i] = p.Type
		}
		root.bind(fn.Name, types.Function(params, fn.Lambda.Result))
	}
	for _, fn := range mod.Functions {
		c.typeOfLambda(root, &fn.Lambda)
	}
}

func (c *Checker) errorf(code diag.Code, sp source.Span, format string, args ...any) {
	c.reporter.Report(diag.NewError(code, sp, fmt.Sprintf(format, args...)))
}
