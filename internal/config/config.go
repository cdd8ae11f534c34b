// Package config loads the module-environment configuration a driver
// supplies alongside source: the error-type name and the runtime symbol
// table the HIR->MIR lowerer (internal/mir) emits calls against. It follows
// the same TOML-plus-meta-check shape the surge.toml loader uses: decode
// into an unexported shape, verify required sections/keys with
// toml.MetaData.IsDefined, and return a sentinel error for each missing
// piece rather than letting a zero-value field pass silently.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"ember/internal/types"
)

// ErrErrorSectionMissing is returned when a module environment file has
// an [error] section whose type is absent or blank. A file with no [error]
// section at all is accepted and leaves env.ErrorTypeName unchanged.
var ErrErrorSectionMissing = errors.New("missing [error]")

// fileShape mirrors the TOML layout documented for a module environment
// file:
//
//	[error]
//	type = "error"
//
//	[runtime.list]
//	empty = "list-empty"
//	cons = "list-cons"
//	concat = "list-concat"
//	fold = "list-fold"
//	"empty?" = "list-empty?"
//	head = "list-head"
//	tail = "list-tail"
//
//	[runtime.map]
//	empty = "map-empty"
//	insert = "map-insert"
//	remove = "map-remove"
//	lookup = "map-lookup"
//	merge = "map-merge"
//	"contains?" = "map-contains?"
//	fold = "map-fold"
//
//	[runtime.string]
//	equal = "string-equal"
//
//	[runtime.concurrency]
//	spawn = "spawn"
//
// Every [runtime.*] table is optional and partial: a key it omits falls
// back to internal/mir's own default symbol name, so a module environment
// file only needs to name the symbols that differ from the default.
type fileShape struct {
	Error struct {
		Type string `toml:"type"`
	} `toml:"error"`
	Runtime struct {
		List        map[string]string `toml:"list"`
		Map         map[string]string `toml:"map"`
		String      map[string]string `toml:"string"`
		Concurrency map[string]string `toml:"concurrency"`
	} `toml:"runtime"`
}

// Load parses a module environment file at path and applies it to env.
// env's Records/Aliases are left untouched; Load only fills the
// runtime-configured fields §4.7 lists.
func Load(path string, env *types.Env) error {
	var f fileShape
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("error") {
		name := strings.TrimSpace(f.Error.Type)
		if name == "" {
			return fmt.Errorf("%s: %w", path, ErrErrorSectionMissing)
		}
		env.ErrorTypeName = name
	}
	env.ListRuntime = mergeRuntime(env.ListRuntime, f.Runtime.List)
	env.MapRuntime = mergeRuntime(env.MapRuntime, f.Runtime.Map)
	env.StringRuntime = mergeRuntime(env.StringRuntime, f.Runtime.String)
	env.ConcurrencyRuntime = mergeRuntime(env.ConcurrencyRuntime, f.Runtime.Concurrency)
	return nil
}

// mergeRuntime overlays decoded onto existing (which may be nil), decoded
// entries taking precedence so a second Load call can refine an earlier one.
func mergeRuntime(existing types.RuntimeNames, decoded map[string]string) types.RuntimeNames {
	if len(decoded) == 0 {
		return existing
	}
	out := types.RuntimeNames{}
	for k, v := range existing {
		out[k] = v
	}
	for k, v := range decoded {
		out[k] = v
	}
	return out
}

// Default returns a module environment file's default symbol table, the
// same names internal/mir falls back to when no configuration is present.
// A driver emitting a starter module environment file for a new project
// can marshal this to give every key an explicit, editable entry.
func Default() string {
	return `[error]
type = "error"

[runtime.list]
empty = "list-empty"
cons = "list-cons"
concat = "list-concat"
fold = "list-fold"
"empty?" = "list-empty?"
head = "list-head"
tail = "list-tail"

[runtime.map]
empty = "map-empty"
insert = "map-insert"
remove = "map-remove"
lookup = "map-lookup"
merge = "map-merge"
"contains?" = "map-contains?"
fold = "map-fold"

[runtime.string]
equal = "string-equal"

[runtime.concurrency]
spawn = "spawn"
`
}
