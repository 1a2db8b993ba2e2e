// Package filesystem abstracts the file operations the converter needs, so
// that scanning and writing can run against the OS, an in-memory tree in
// tests, or assets embedded in the binary.
//
// Implementations:
//   - OSFileSystem: the real filesystem (read and write)
//   - MemoryFileSystem: in-memory tree for tests (read and write, concurrency safe)
//   - EmbedFileSystem: read-only view of an embed.FS
package filesystem
