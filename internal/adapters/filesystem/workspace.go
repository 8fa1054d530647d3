// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/restforge/restforge/internal/ports/secondary"
)

// WorkspaceAdapter implements secondary.Workspace for the host project tree.
type WorkspaceAdapter struct{}

// NewWorkspaceAdapter creates a new filesystem workspace adapter.
func NewWorkspaceAdapter() *WorkspaceAdapter {
	return &WorkspaceAdapter{}
}

// ListFiles returns the regular files under dir. A missing directory is
// treated as empty, not as a failure.
func (a *WorkspaceAdapter) ListFiles(dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check directory: %w", err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory: %w", err)
		}
		var files []string
		for _, e := range entries {
			if e.Type().IsRegular() {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
		return files, nil
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}
	return files, nil
}

// Exists checks if a path exists.
func (a *WorkspaceAdapter) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check path: %w", err)
	}
	return true, nil
}

// WriteFile writes content to path, creating parent directories.
func (a *WorkspaceAdapter) WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Ensure WorkspaceAdapter implements the interface
var _ secondary.Workspace = (*WorkspaceAdapter)(nil)
