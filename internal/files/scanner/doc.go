// Package scanner discovers SVG sources.
//
// For each source it reads the markup, computes raw and normalized
// checksums, derives the component name from the file name and the output
// path relative to the output root. It works on any
// filesystem.FileSystemProvider: the OS, an in-memory tree in tests, or
// the embedded sample icons.
package scanner
