package svgrn

// FileScanner discovers source documents.
// Implementations must be safe for concurrent use by multiple goroutines.
type FileScanner interface {
	// Scan returns the sources under path. A directory is scanned recursively
	// for .svg files; a file is returned as the only source.
	Scan(path string) (ScanResult, error)
}

// Converter turns one source document into a component.
// Implementations must be stateless between calls.
type Converter interface {
	Convert(src []byte, name string) (Component, error)
}

// WriteStatus reports what a ComponentWriter did.
type WriteStatus int

const (
	// WriteCreated means a new file was created.
	WriteCreated WriteStatus = iota
	// WriteOverwritten means an existing file was replaced.
	WriteOverwritten
	// WriteUnchanged means the existing file already had identical content.
	WriteUnchanged
)

// ComponentWriter persists generated components.
type ComponentWriter interface {
	// Write stores content at path. Existing files are only replaced when
	// overwrite is true; identical existing content is never an error.
	Write(path string, content []byte, overwrite bool) (WriteStatus, error)
}
