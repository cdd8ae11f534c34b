// Package diagfmt renders a diag.Bag as colorized, human-readable text for
// a compiler operator's terminal. It has no interactive surface, only a
// pure Bag -> string rendering.
package diagfmt

// PathMode controls how file paths are displayed in rendered diagnostics.
type PathMode uint8

const (
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures Pretty.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
}
