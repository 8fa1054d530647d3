package secondary

// Workspace provides file-system access to the host project.
type Workspace interface {
	// ListFiles returns the regular files under dir. A missing directory
	// yields an empty result, not an error.
	ListFiles(dir string, recursive bool) ([]string, error)

	// Exists reports whether path exists.
	Exists(path string) (bool, error)

	// WriteFile writes content to path, creating parent directories.
	WriteFile(path string, content []byte) error
}
