package hir

import (
	"ember/internal/ast"
	"ember/internal/types"
)

// FunctionDef is a module-level definition after desugaring: the name is
// already fully qualified where applicable.
type FunctionDef struct {
	Name          string
	Exported      bool
	Lambda        Lambda
	ForeignExport bool
	ForeignConv   ast.CallConv
}

// Module is one desugared file: type definitions have already been
// absorbed into the shared types.Env: the module only carries what it
// defines locally, findable in Env by name.
type Module struct {
	Path      string
	Functions []FunctionDef
}

// CollectEnv returns a types.Env populated from the module's own record/alias
// definitions, prior to merging in imports (callers merge transitively
// imported environments before use).
func CollectEnv(mod *ast.Module, errorTypeName string) *types.Env {
	env := types.NewEnv()
	if errorTypeName != "" {
		env.ErrorTypeName = errorTypeName
	}
	for _, td := range mod.Types {
		switch d := td.(type) {
		case ast.RecordDef:
			env.AddRecord(types.RecordDef{Name: d.Name, Fields: d.Fields, Decl: d.Sp})
		case ast.AliasDef:
			env.AddAlias(types.AliasDef{Name: d.Name, Target: d.Target, Decl: d.Sp})
		}
	}
	return env
}
