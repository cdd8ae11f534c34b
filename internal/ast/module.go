package ast

import (
	"ember/internal/source"
	"ember/internal/types"
)

// Import is `import path ("as" alias)? ("{" names "}")?`.
type Import struct {
	Path    string
	As      string
	HasAs   bool
	Names   []string
	HasOnly bool
	Sp      source.Span
}

// ForeignImport is `import foreign conv? name type`.
type ForeignImport struct {
	Name string
	Conv CallConv
	Type types.Type
	Sp   source.Span
}

// TypeDef is either a RecordDef or an AliasDef.
type TypeDef interface {
	typeDefNode()
	Span() source.Span
}

// RecordDef declares a nominal record and its ordered field list.
type RecordDef struct {
	Name   string
	Fields []types.Field
	Sp     source.Span
}

func (RecordDef) typeDefNode()        {}
func (d RecordDef) Span() source.Span { return d.Sp }

// AliasDef declares `type Name = Target`.
type AliasDef struct {
	Name   string
	Target types.Type
	Sp     source.Span
}

func (AliasDef) typeDefNode()        {}
func (d AliasDef) Span() source.Span { return d.Sp }

// FunctionDef is `("export")? ("foreign" conv?)? name "=" lambda`.
type FunctionDef struct {
	Name          string
	Exported      bool
	Lambda        Lambda
	ForeignExport bool
	ForeignConv   CallConv
	Sp            source.Span
}

// Module is one parsed file: `import* foreign-import* type-def* function-def*`.
type Module struct {
	Path           string
	Imports        []Import
	ForeignImports []ForeignImport
	Types          []TypeDef
	Functions      []FunctionDef
}
