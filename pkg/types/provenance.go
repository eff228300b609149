package types

// Provenance tracks where a schematic was read from.
type Provenance interface {
	Kind() string
	// Path returns displayable path (if applicable)
	Path() string
}

// FileProvenance for filesystem files.
type FileProvenance struct {
	FilePath string
}

// Kind returns "file".
func (f FileProvenance) Kind() string {
	return "file"
}

// Path returns the file path.
func (f FileProvenance) Path() string {
	return f.FilePath
}

// InlineProvenance for content handed over directly (stdin, serve requests, WASM).
type InlineProvenance struct {
	Source string
}

// Kind returns "inline".
func (i InlineProvenance) Kind() string {
	return "inline"
}

// Path returns the caller-supplied source label.
func (i InlineProvenance) Path() string {
	return i.Source
}

// NewProvenance rebuilds a provenance value from its stored kind and path.
func NewProvenance(kind, path string) Provenance {
	if kind == "inline" {
		return InlineProvenance{Source: path}
	}
	return FileProvenance{FilePath: path}
}
