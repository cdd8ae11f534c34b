// Package compile is the single public entry point over the core pipeline:
// parse -> desugar -> infer -> check -> lower, for one module. It is a much
// smaller orchestration than a multi-module driver's module-graph
// resolution: Module takes the caller's already-loaded source plus the
// environment contributed by whatever else the module depends on, and
// returns the lowered mir.Module or the accumulated diagnostics. A driver
// wanting a whole package resolves the import graph itself (topological
// order, module path -> hir.ImportedModule) and calls Module once per
// module in dependency order, merging each Env's Records/Aliases/Runtime
// tables forward into the Options.Env passed to the next call, which
// Module expects to be already merged.
package compile

import (
	"ember/internal/diag"
	"ember/internal/hir"
	"ember/internal/infer"
	"ember/internal/lexer"
	"ember/internal/mir"
	"ember/internal/parser"
	"ember/internal/sema"
	"ember/internal/source"
	"ember/internal/types"
)

// Options configures one Module call.
type Options struct {
	// Imported supplies, for every module path this module imports, the
	// public names it exports -- hir.Desugar's own contract.
	Imported map[string]hir.ImportedModule

	// Signatures supplies the declared type of every externally-visible
	// name this module's bodies may call but does not itself define
	// (typically every imported module's exported function signatures,
	// merged by the caller). infer/sema/mir all take this same shape.
	Signatures map[string]types.Type

	// Env carries the record/alias definitions and runtime symbol table
	// this module's types resolve against, already merged with whatever
	// its dependencies contributed. CollectEnv populates the local half
	// (this module's own record/alias defs); Env passed here should
	// already include the rest.
	Env *types.Env

	// MaxDiagnostics bounds the diag.Bag's capacity; 0 means unlimited.
	MaxDiagnostics int
}

// Result carries every stage's output a caller might want, plus the
// diagnostics accumulated along the way. MIR is nil whenever any earlier
// stage reported a diagnostic: the pipeline never lowers ill-typed input.
type Result struct {
	Bag  *diag.Bag
	HIR  *hir.Module
	MIR  *mir.Module
	Env  *types.Env
}

// Module runs the full pipeline over one file's content and returns its
// lowered form. path identifies the module for diagnostics and becomes
// the resulting hir.Module/mir.Module's Path.
func Module(fs *source.FileSet, fileID source.FileID, path string, opts Options) (*Result, error) {
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}
	res := &Result{Bag: bag}

	file := fs.Get(fileID)
	lx := lexer.New(fileID, file.Content, reporter)
	astMod := parser.ParseModule(lx, reporter, path)
	if bag.HasErrors() {
		return res, nil
	}

	env := opts.Env
	if env == nil {
		env = types.NewEnv()
	}
	local := hir.CollectEnv(astMod, env.ErrorTypeName)
	for _, def := range local.Records {
		env.AddRecord(def)
	}
	for _, def := range local.Aliases {
		env.AddAlias(def)
	}
	res.Env = env

	hirMod, err := hir.Desugar(astMod, opts.Imported)
	if err != nil {
		reporter.Report(toDiagnostic(err))
		return res, nil
	}

	inf := infer.New(env)
	hirMod, err = inf.InferModule(hirMod, opts.Signatures)
	if err != nil {
		reporter.Report(toDiagnostic(err))
		return res, nil
	}
	res.HIR = hirMod

	checker := sema.New(env, reporter)
	checker.CheckModule(hirMod, opts.Signatures)
	if bag.HasErrors() {
		return res, nil
	}

	lowerer := mir.New(env)
	mirMod, err := lowerer.LowerModule(hirMod, opts.Signatures)
	if err != nil {
		reporter.Report(toDiagnostic(err))
		return res, nil
	}
	res.MIR = mirMod
	return res, nil
}

// toDiagnostic adapts a stage's returned error to a diag.Diagnostic: every
// error the core stages return is already a diag.Diagnostic value wearing
// the error interface (see diag.Diagnostic.Error), so this only has a
// fallback branch for the one stage (hir.Desugar) that can in principle
// return a bare error.
func toDiagnostic(err error) diag.Diagnostic {
	if d, ok := err.(diag.Diagnostic); ok {
		return d
	}
	return diag.NewError(diag.UnknownCode, source.Span{}, err.Error())
}
