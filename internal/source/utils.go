package source

import (
	"path/filepath"
	"slices"
	"sort"
)

// normalizeCRLF replaces every \r\n with \n, leaving lone \r bytes alone.
// Returns the rewritten slice and whether any replacement happened.
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Fast path: no \r at all, return as-is.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	// Result is at most as long as the input, possibly shorter.
	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

// buildLineIndex records the 0-based byte offset of every '\n' in
// content. Line 1 starts at byte 0; line k > 1 starts at
// LineIdx[k-2] + 1.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content))
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol converts a byte offset into a 1-based line/column pair
// using a precomputed newline index.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	// Find the first '\n' strictly after off.
	i := sort.Search(len(lineIdx), func(k int) bool { return lineIdx[k] > off })
	if i == 0 {
		// off falls before the first '\n'.
		return LineCol{Line: 1, Col: off + 1}
	}
	// The last '\n' at or before off sits at index i-1.
	last := lineIdx[i-1]
	if off == last {
		// off lands exactly on the newline: treat it as the end of the
		// previous line.
		var start uint32
		if i-1 == 0 {
			start = 0
		} else {
			start = lineIdx[i-2] + 1
		}
		return LineCol{Line: uint32(i), Col: last - start + 1}
	}
	start := last + 1
	return LineCol{Line: uint32(i + 1), Col: off - start + 1}
}

func normalizePath(p string) string {
	// One canonical form so paths diff consistently across platforms.
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath returns the normalized absolute form of path.
func AbsolutePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}
	return normalizePath(absPath), nil
}

// RelativePath returns path relative to base, falling back to the
// normalized absolute path if no relative form can be computed or path
// lies outside base.
func RelativePath(path, base string) (string, error) {
	// Resolve both paths to absolute first.
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}

	absBase, err := filepath.Abs(base)
	if err != nil {
		return normalizePath(absPath), nil
	}

	relPath, err := filepath.Rel(absBase, absPath)
	if err != nil || !filepath.IsLocal(relPath) {
		return normalizePath(absPath), nil
	}

	return normalizePath(relPath), nil
}

// BaseName returns just the file name, directories stripped, normalized
// for consistency (basenames rarely contain slashes, but keep it uniform
// with AbsolutePath/RelativePath anyway).
func BaseName(path string) string {
	return normalizePath(filepath.Base(path))
}
