package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/vvka-141/svgrn/internal/checksum"
	"github.com/vvka-141/svgrn/internal/component"
	"github.com/vvka-141/svgrn/internal/files/filesystem"
	"github.com/vvka-141/svgrn/pkg/svgrn"
)

// Scanner discovers source documents and derives their component names and
// output paths.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided calculator and fsProvider are also thread-safe.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new scanner over the OS filesystem.
// Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator) *Scanner {
	return NewScannerWithFS(calculator, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a new scanner with a custom filesystem provider.
// Panics if calculator or fsProvider is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
	}
}

// Scan returns the sources at sourcePath.
//
// A directory is walked recursively; every file with a .svg extension
// (any case) becomes a source, and directories whose name starts with a dot
// are skipped. A file is returned as the only source regardless of its
// extension. A path without extension that does not exist is retried with
// .svg appended, so "icons/arrow" finds "icons/arrow.svg".
//
// Sources are returned in lexical order of their relative paths.
func (s *Scanner) Scan(sourcePath string) (svgrn.ScanResult, error) {
	resolved, info, err := s.stat(sourcePath)
	if err != nil {
		return svgrn.ScanResult{}, err
	}

	if !info.IsDir() {
		content, err := s.fsProvider.ReadFile(resolved)
		if err != nil {
			return svgrn.ScanResult{}, fmt.Errorf("failed to read %s: %w", resolved, err)
		}
		return svgrn.ScanResult{
			Root:       filepath.Dir(resolved),
			Files:      []svgrn.SourceFile{s.sourceFile(resolved, filepath.Base(resolved), content)},
			SingleFile: true,
		}, nil
	}

	dir, err := s.fsProvider.Open(resolved)
	if err != nil {
		return svgrn.ScanResult{}, fmt.Errorf("failed to open directory: %w", err)
	}

	var files []svgrn.SourceFile
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		rel := file.RelativePath()
		if file.Info().IsDir() {
			if rel != "." && strings.HasPrefix(file.Info().Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !IsSource(rel) {
			return nil
		}

		content, err := file.ReadContent()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", rel, err)
		}
		files = append(files, s.sourceFile(file.Path(), rel, content))
		return nil
	})
	if err != nil {
		return svgrn.ScanResult{}, err
	}

	return svgrn.ScanResult{Root: dir.Path(), Files: files}, nil
}

// stat resolves sourcePath, falling back to sourcePath + ".svg".
func (s *Scanner) stat(sourcePath string) (string, filesystem.FileInfo, error) {
	info, err := s.fsProvider.Stat(sourcePath)
	if err == nil {
		return sourcePath, info, nil
	}

	if errors.Is(err, fs.ErrNotExist) && filepath.Ext(sourcePath) == "" {
		withExt := sourcePath + svgrn.SourceExtension
		if info, extErr := s.fsProvider.Stat(withExt); extErr == nil {
			return withExt, info, nil
		}
	}

	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, fmt.Errorf("%w: %s", svgrn.ErrSourceNotFound, sourcePath)
	}
	return "", nil, fmt.Errorf("failed to access %s: %w", sourcePath, err)
}

func (s *Scanner) sourceFile(absPath, relPath string, content []byte) svgrn.SourceFile {
	relPath = filepath.ToSlash(relPath)
	name := component.Name(relPath)

	return svgrn.SourceFile{
		Path:          absPath,
		RelativePath:  relPath,
		ComponentName: name,
		OutputPath:    OutputPath(relPath, name),
		Content:       content,
		Checksum:      s.calculator.CalculateNormalized(content),
		ChecksumRaw:   s.calculator.CalculateRaw(content),
	}
}

// OutputPath places the component next to where the source sits relative to
// the scanned root: "arrows/arrow-left.svg" becomes "arrows/ArrowLeft.tsx".
func OutputPath(relPath, componentName string) string {
	return path.Join(path.Dir(filepath.ToSlash(relPath)), componentName+svgrn.OutputExtension)
}

// IsSource reports whether name has the source extension, ignoring case.
func IsSource(name string) bool {
	return strings.EqualFold(path.Ext(name), svgrn.SourceExtension)
}

// Verify Scanner implements the interface at compile time
var _ svgrn.FileScanner = (*Scanner)(nil)
