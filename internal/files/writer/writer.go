// Package writer persists generated components.
package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/vvka-141/svgrn/internal/checksum"
	"github.com/vvka-141/svgrn/internal/files/filesystem"
	"github.com/vvka-141/svgrn/pkg/svgrn"
)

// Writer implements svgrn.ComponentWriter on a writable filesystem.
//
// Existing files are only replaced when overwrite is requested. An existing
// file whose content already matches is reported as unchanged in both modes,
// so re-running a conversion without --force succeeds.
type Writer struct {
	fsys       filesystem.WritableFileSystem
	calculator checksum.Calculator
}

var _ svgrn.ComponentWriter = (*Writer)(nil)

// New creates a Writer. Panics if fsys or calculator is nil.
func New(fsys filesystem.WritableFileSystem, calculator checksum.Calculator) *Writer {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	return &Writer{fsys: fsys, calculator: calculator}
}

// Write stores content at path, creating parent directories.
func (w *Writer) Write(path string, content []byte, overwrite bool) (svgrn.WriteStatus, error) {
	existed := false
	if info, err := w.fsys.Stat(path); err == nil {
		if info.IsDir() {
			return 0, fmt.Errorf("%w: %s is a directory", svgrn.ErrOutputNotWritable, path)
		}
		existed = true

		if w.unchanged(path, content) {
			return svgrn.WriteUnchanged, nil
		}
		if !overwrite {
			return 0, existsError(path)
		}
	}

	if err := w.fsys.MkdirAll(filepath.Dir(path)); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", svgrn.ErrOutputNotWritable, path, err)
	}

	// exclusive create closes the gap between Stat and the write
	if err := w.fsys.WriteFile(path, content, !overwrite); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, existsError(path)
		}
		return 0, fmt.Errorf("%w: %s: %v", svgrn.ErrOutputNotWritable, path, err)
	}

	if existed {
		return svgrn.WriteOverwritten, nil
	}
	return svgrn.WriteCreated, nil
}

func (w *Writer) unchanged(path string, content []byte) bool {
	existing, err := w.fsys.ReadFile(path)
	if err != nil {
		return false
	}
	return w.calculator.CalculateRaw(existing) == w.calculator.CalculateRaw(content)
}

func existsError(path string) error {
	return fmt.Errorf("%w: %s. Use the force (--force) flag to overwrite the existing files", svgrn.ErrOutputExists, path)
}
