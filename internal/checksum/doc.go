// Package checksum hashes source markup.
//
// Two checksums are kept per source:
//
//   - Raw checksum: hash of the exact bytes. The writer compares it against
//     existing output to report files that are already up to date.
//   - Normalized checksum: hash after dropping comments and insignificant
//     whitespace. Sources with equal normalized checksums are the same icon
//     exported with different formatting.
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
