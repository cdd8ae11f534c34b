package mir

import "ember/internal/types"

// Runtime operation keys: the logical names internal/config binds to
// actual linked symbol names in a types.Env's *Runtime tables. A key
// absent from the table falls back to its default symbol name below,
// so a module compiles even before a driver supplies a config file.
const (
	rtListEmpty   = "empty"
	rtListCons    = "cons"
	rtListConcat  = "concat"
	rtListFold    = "fold"
	rtListIsEmpty = "empty?"
	rtListHead    = "head"
	rtListTail    = "tail"

	rtMapEmpty    = "empty"
	rtMapInsert   = "insert"
	rtMapRemove   = "remove"
	rtMapLookup   = "lookup"
	rtMapMerge    = "merge"
	rtMapContains = "contains?"
	rtMapFold     = "fold"

	rtStringEqual = "equal"

	rtSpawn = "spawn"
)

var listDefaults = map[string]string{
	rtListEmpty:   "list-empty",
	rtListCons:    "list-cons",
	rtListConcat:  "list-concat",
	rtListFold:    "list-fold",
	rtListIsEmpty: "list-empty?",
	rtListHead:    "list-head",
	rtListTail:    "list-tail",
}

var mapDefaults = map[string]string{
	rtMapEmpty:    "map-empty",
	rtMapInsert:   "map-insert",
	rtMapRemove:   "map-remove",
	rtMapLookup:   "map-lookup",
	rtMapMerge:    "map-merge",
	rtMapContains: "map-contains?",
	rtMapFold:     "map-fold",
}

var stringDefaults = map[string]string{
	rtStringEqual: "string-equal",
}

var concurrencyDefaults = map[string]string{
	rtSpawn: "spawn",
}

func runtimeSymbol(table types.RuntimeNames, defaults map[string]string, key string) string {
	if table != nil {
		if name, ok := table[key]; ok {
			return name
		}
	}
	return defaults[key]
}

func (lw *Lowerer) listSymbol(key string) string  { return runtimeSymbol(lw.env.ListRuntime, listDefaults, key) }
func (lw *Lowerer) mapSymbol(key string) string   { return runtimeSymbol(lw.env.MapRuntime, mapDefaults, key) }
func (lw *Lowerer) stringSymbol(key string) string {
	return runtimeSymbol(lw.env.StringRuntime, stringDefaults, key)
}
func (lw *Lowerer) concurrencySymbol(key string) string {
	return runtimeSymbol(lw.env.ConcurrencyRuntime, concurrencyDefaults, key)
}
