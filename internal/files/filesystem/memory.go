package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry is a file or directory of a MemoryFileSystem
type memoryEntry struct {
	absPath string
	content []byte
	info    *memoryFileInfo
}

// memoryFile is a walked entry; relPath is relative to the walked directory
type memoryFile struct {
	*memoryEntry
	relPath string
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	return f.content, nil
}

// memoryDirectory implements Directory for MemoryFileSystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.entriesUnder(d.absPath)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	skipPrefix := ""
	for _, entry := range entries {
		if skipPrefix != "" && strings.HasPrefix(entry.absPath, skipPrefix) {
			continue
		}

		rel := "."
		if entry.absPath != d.absPath {
			rel = strings.TrimPrefix(entry.absPath, strings.TrimSuffix(d.absPath, "/")+"/")
		}

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()

			callbackErr = fn(&memoryFile{memoryEntry: entry, relPath: rel}, nil)
		}()

		if errors.Is(callbackErr, fs.SkipDir) && entry.info.IsDir() {
			skipPrefix = entry.absPath + "/"
			continue
		}
		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

// MemoryFileSystem implements WritableFileSystem in memory. It is safe for
// concurrent use.
type MemoryFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry // absolute path -> entry
	root    string
}

var _ WritableFileSystem = (*MemoryFileSystem)(nil)

// NewMemoryFileSystem creates a new in-memory filesystem. Relative paths
// given to its methods are resolved against root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.entries[root] = newDirEntry(root)
	return mfs
}

func newDirEntry(p string) *memoryEntry {
	return &memoryEntry{
		absPath: p,
		info: &memoryFileInfo{
			name:    path.Base(p),
			mode:    0o755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// AddFile adds a file, creating parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time.
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.put(mfs.resolve(filePath), []byte(content), modTime)
}

func (mfs *MemoryFileSystem) put(absPath string, content []byte, modTime time.Time) {
	data := make([]byte, len(content))
	copy(data, content)

	mfs.entries[absPath] = &memoryEntry{
		absPath: absPath,
		content: data,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(data)),
			mode:    0o644,
			modTime: modTime,
		},
	}
	mfs.ensureDirs(path.Dir(absPath))
}

// ensureDirs creates entries for dir and its parents
func (mfs *MemoryFileSystem) ensureDirs(dir string) {
	for dir != "." && dir != "/" {
		if _, exists := mfs.entries[dir]; exists {
			return
		}
		mfs.entries[dir] = newDirEntry(dir)
		dir = path.Dir(dir)
	}
}

func (mfs *MemoryFileSystem) entriesUnder(basePath string) []*memoryEntry {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	prefix := strings.TrimSuffix(basePath, "/") + "/"
	var out []*memoryEntry
	for p, e := range mfs.entries {
		if p == basePath || strings.HasPrefix(p, prefix) {
			out = append(out, e)
		}
	}
	return out
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	mfs.mu.RLock()
	entry, exists := mfs.entries[absPath]
	mfs.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("directory not found: %s: %w", openPath, fs.ErrNotExist)
	}
	if !entry.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.RLock()
	entry, exists := mfs.entries[mfs.resolve(filePath)]
	mfs.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if entry.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return entry.content, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	entry, exists := mfs.entries[mfs.resolve(statPath)]
	mfs.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return entry.info, nil
}

// MkdirAll implements WritableFileSystem.MkdirAll
func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	absPath := mfs.resolve(dirPath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if entry, exists := mfs.entries[absPath]; exists && !entry.info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", dirPath)
	}
	mfs.ensureDirs(absPath)
	return nil
}

// WriteFile implements WritableFileSystem.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte, exclusive bool) error {
	absPath := mfs.resolve(filePath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if parent, exists := mfs.entries[path.Dir(absPath)]; !exists {
		return fmt.Errorf("parent directory not found: %s: %w", filePath, fs.ErrNotExist)
	} else if !parent.info.IsDir() {
		return fmt.Errorf("parent is not a directory: %s", filePath)
	}

	if entry, exists := mfs.entries[absPath]; exists {
		if entry.info.IsDir() {
			return fmt.Errorf("path is a directory, not a file: %s", filePath)
		}
		if exclusive {
			return fmt.Errorf("file exists: %s: %w", filePath, fs.ErrExist)
		}
	}

	mfs.put(absPath, data, time.Now())
	return nil
}
