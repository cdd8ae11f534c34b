package source

type (
	// FileID uniquely identifies one loaded version of a module within a
	// FileSet. Reparsing the same path yields a new FileID rather than
	// overwriting the old one, so diagnostics issued against a stale
	// version stay resolvable.
	FileID uint32
	// FileFlags records how a module's bytes were obtained and normalized.
	FileFlags uint8
)

const (
	// FileVirtual marks a module added from memory (tests, stdin, a
	// generated shim) rather than read from disk.
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for one loaded version of a module.
type File struct {
	ID      FileID
	Path    string
	PathID  StringID
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
