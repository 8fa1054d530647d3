package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "post_repository.go"))
	mustWrite(t, filepath.Join(dir, "users", "user_repository.go"))
	mustWrite(t, filepath.Join(dir, "users", "helpers.go"))

	a := NewWorkspaceAdapter()

	flat, err := a.ListFiles(dir, false)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if len(flat) != 1 {
		t.Errorf("non-recursive len = %d, want 1: %v", len(flat), flat)
	}

	all, err := a.ListFiles(dir, true)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("recursive len = %d, want 3: %v", len(all), all)
	}
}

func TestListFilesMissingDirectory(t *testing.T) {
	a := NewWorkspaceAdapter()

	files, err := a.ListFiles(filepath.Join(t.TempDir(), "nope"), true)
	if err != nil {
		t.Fatalf("ListFiles() error = %v, want nil", err)
	}
	if len(files) != 0 {
		t.Errorf("len = %d, want 0", len(files))
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post_repository.go")
	mustWrite(t, path)

	a := NewWorkspaceAdapter()

	ok, err := a.Exists(path)
	if err != nil || !ok {
		t.Errorf("Exists(%q) = %v, %v; want true, nil", path, ok, err)
	}

	ok, err = a.Exists(filepath.Join(dir, "missing.go"))
	if err != nil || ok {
		t.Errorf("Exists(missing) = %v, %v; want false, nil", ok, err)
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "comments", "comment_repository.go")

	a := NewWorkspaceAdapter()
	if err := a.WriteFile(path, []byte("package comments\n")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(content) != "package comments\n" {
		t.Errorf("content = %q", content)
	}
}

func mustWrite(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("package x\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}
