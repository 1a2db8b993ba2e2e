package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_Open_ValidDirectory(t *testing.T) {
	dir := t.TempDir()
	fsys := NewOSFileSystem()

	d, err := fsys.Open(dir)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", dir, err)
	}

	absDir, _ := filepath.Abs(dir)
	if d.Path() != absDir {
		t.Errorf("directory.Path() = %q, want %q", d.Path(), absDir)
	}
}

func TestOSFileSystem_Open_NonexistentPath(t *testing.T) {
	fsys := NewOSFileSystem()

	_, err := fsys.Open(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Error("Open(nonexistent) should return error")
	}
}

func TestOSFileSystem_Open_FileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.txt")
	os.WriteFile(filePath, []byte("content"), 0644)

	fsys := NewOSFileSystem()

	_, err := fsys.Open(filePath)
	if err == nil {
		t.Error("Open(file) should return error")
	}
}

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "icon.svg")
	expected := "<svg/>"
	os.WriteFile(filePath, []byte(expected), 0644)

	fsys := NewOSFileSystem()

	data, err := fsys.ReadFile(filePath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != expected {
		t.Errorf("ReadFile() = %q, want %q", string(data), expected)
	}
}

func TestOSFileSystem_ReadFile_Nonexistent(t *testing.T) {
	fsys := NewOSFileSystem()

	_, err := fsys.ReadFile(filepath.Join(t.TempDir(), "nope.svg"))
	if err == nil {
		t.Error("ReadFile(nonexistent) should return error")
	}
}

func TestOSFileSystem_Stat_File(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "icon.svg")
	os.WriteFile(filePath, []byte("<svg/>"), 0644)

	fsys := NewOSFileSystem()

	info, err := fsys.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() {
		t.Error("Stat(file) should not be a directory")
	}
	if info.Name() != "icon.svg" {
		t.Errorf("Stat().Name() = %q, want %q", info.Name(), "icon.svg")
	}
}

func TestOSFileSystem_Stat_Directory(t *testing.T) {
	dir := t.TempDir()
	fsys := NewOSFileSystem()

	info, err := fsys.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat(dir) should be a directory")
	}
}

func TestOSFileSystem_Stat_Nonexistent(t *testing.T) {
	fsys := NewOSFileSystem()

	_, err := fsys.Stat(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("Stat(nonexistent) should return error")
	}
}

func TestOSFileSystem_Walk(t *testing.T) {
	dir := t.TempDir()

	// Create a tree:
	//   dir/
	//     a.svg
	//     sub/
	//       b.svg
	sub := filepath.Join(dir, "sub")
	os.Mkdir(sub, 0755)
	os.WriteFile(filepath.Join(dir, "a.svg"), []byte("<svg/>"), 0644)
	os.WriteFile(filepath.Join(sub, "b.svg"), []byte("<svg></svg>"), 0644)

	fsys := NewOSFileSystem()
	d, err := fsys.Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	var files []string
	err = d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !f.Info().IsDir() {
			files = append(files, f.RelativePath())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Walk found %d files, want 2: %v", len(files), files)
	}

	found := map[string]bool{}
	for _, f := range files {
		found[f] = true
	}

	if !found["a.svg"] {
		t.Error("Walk did not find a.svg")
	}
	if !found["sub/b.svg"] {
		t.Error("Walk did not find sub/b.svg")
	}
}

func TestOSFile_ReadContent(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "content.svg")
	expected := `<svg viewBox="0 0 1 1"/>`
	os.WriteFile(filePath, []byte(expected), 0644)

	fsys := NewOSFileSystem()
	d, err := fsys.Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	var fileContent string
	d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if f.RelativePath() == "content.svg" {
			data, err := f.ReadContent()
			if err != nil {
				t.Fatalf("ReadContent() error = %v", err)
			}
			fileContent = string(data)
		}
		return nil
	})

	if fileContent != expected {
		t.Errorf("ReadContent() = %q, want %q", fileContent, expected)
	}
}

func TestOSFileSystem_WriteFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out", "Icon.tsx")
	fsys := NewOSFileSystem()

	if err := fsys.MkdirAll(filepath.Dir(target)); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := fsys.WriteFile(target, []byte("first"), true); err != nil {
		t.Fatalf("WriteFile(exclusive) error = %v", err)
	}

	err := fsys.WriteFile(target, []byte("second"), true)
	if !errors.Is(err, fs.ErrExist) {
		t.Fatalf("WriteFile(exclusive) on existing file error = %v, want fs.ErrExist", err)
	}

	if err := fsys.WriteFile(target, []byte("2nd"), false); err != nil {
		t.Fatalf("WriteFile(overwrite) error = %v", err)
	}
	data, _ := os.ReadFile(target)
	if string(data) != "2nd" {
		t.Errorf("content = %q, want %q", data, "2nd")
	}
}

func TestOSFileSystem_WriteFile_MissingParent(t *testing.T) {
	fsys := NewOSFileSystem()

	err := fsys.WriteFile(filepath.Join(t.TempDir(), "missing", "Icon.tsx"), []byte("x"), false)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("WriteFile() error = %v, want fs.ErrNotExist", err)
	}
}
