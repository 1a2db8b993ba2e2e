package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File is one entry found while walking a Directory.
type File interface {
	// Path returns the provider-absolute path of the entry
	Path() string

	// RelativePath returns the path relative to the walked directory, with forward slashes
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory is a directory tree that can be walked.
type Directory interface {
	// Path returns the provider-absolute path of the directory
	Path() string

	// Walk calls fn for every file and directory below Path, including Path itself.
	// Returning fs.SkipDir for a directory skips its contents; any other
	// error returned by fn stops the walk.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider opens directories and reads files.
// Missing paths produce errors wrapping fs.ErrNotExist.
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}

// WritableFileSystem is a FileSystemProvider that generated files can be
// written to.
type WritableFileSystem interface {
	FileSystemProvider

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error

	// WriteFile writes data to path, replacing existing content. With
	// exclusive set it fails with an error wrapping fs.ErrExist when the
	// path already exists.
	WriteFile(path string, data []byte, exclusive bool) error
}
