// Package files groups the file handling used by conversions:
//   - filesystem: OS, in-memory and embedded filesystem providers
//   - scanner: discovery of .svg sources, component names and output paths
//   - writer: writing components with overwrite and up-to-date handling
//
// # Usage
//
//	fileScanner := scanner.NewScanner(checksum.New())
//	result, err := fileScanner.Scan("./icons")
//
//	w := writer.New(filesystem.NewOSFileSystem(), checksum.New())
//	status, err := w.Write("src/icons/Home.tsx", body, force)
package files
