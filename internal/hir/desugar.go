package hir

import (
	"ember/internal/ast"
	"ember/internal/option"
	"ember/internal/types"
)

// ImportedModule is the external collaborator's view of one imported
// module: the unqualified public names it exports. The desugarer qualifies
// each one as "modulePath'name".
type ImportedModule struct {
	Path        string
	PublicNames []string
}

// Desugarer turns a parsed ast.Module into an hir.Module. It is
// stateless across calls except for the rename table built from the
// current module's own import declarations.
type Desugarer struct {
	renames map[string]string // local name -> fully-qualified name
}

// Desugar resolves imports against the supplied module graph and expands
// every surface sugar construct (`go`, comprehension unification, record
// update) into its HIR form. Every optional type slot is left empty: the
// desugarer never infers types.
func Desugar(mod *ast.Module, imported map[string]ImportedModule) (*Module, error) {
	d := &Desugarer{renames: map[string]string{}}
	d.collectImportRenames(mod, imported)

	out := &Module{Path: mod.Path}
	for _, fn := range mod.Functions {
		lambda, err := d.desugarLambda(&fn.Lambda)
		if err != nil {
			return nil, err
		}
		out.Functions = append(out.Functions, FunctionDef{
			Name:          fn.Name,
			Exported:      fn.Exported,
			Lambda:        *lambda,
			ForeignExport: fn.ForeignExport,
			ForeignConv:   fn.ForeignConv,
		})
	}
	return out, nil
}

// collectImportRenames builds {name -> qualified-name} for unqualified
// imports and {prefix'name -> qualified-name} for every public name of a
// prefixed import.
func (d *Desugarer) collectImportRenames(mod *ast.Module, imported map[string]ImportedModule) {
	for _, imp := range mod.Imports {
		im, ok := imported[imp.Path]
		if !ok {
			continue
		}
		switch {
		case imp.HasOnly:
			for _, n := range imp.Names {
				d.renames[n] = imp.Path + "'" + n
			}
		case imp.HasAs:
			for _, n := range im.PublicNames {
				d.renames[imp.As+"'"+n] = imp.Path + "'" + n
			}
		default:
			for _, n := range im.PublicNames {
				d.renames[n] = imp.Path + "'" + n
			}
		}
	}
}

func (d *Desugarer) resolveName(name string) string {
	if q, ok := d.renames[name]; ok {
		return q
	}
	return name
}

func noneType() option.Option[types.Type] { return option.None[types.Type]() }
