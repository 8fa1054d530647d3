package inference

import (
	"path/filepath"

	"github.com/restforge/restforge/internal/core/pattern"
	"github.com/restforge/restforge/internal/ports/secondary"
)

// Resolver resolves a related model name to an existing repository
// file by trying an ordered list of probe roots. The first root that
// contains a matching file wins; an empty result means no repository
// exists yet for that model.
type Resolver struct {
	ws         secondary.Workspace
	probeRoots []string
}

// NewResolver creates a Resolver over the given probe roots.
func NewResolver(ws secondary.Workspace, probeRoots []string) *Resolver {
	return &Resolver{ws: ws, probeRoots: probeRoots}
}

// Resolve returns the path of the repository file for modelName, or
// "" when none of the probe roots contains one.
func (r *Resolver) Resolve(modelName string) string {
	want := pattern.FileName(modelName)
	for _, root := range r.probeRoots {
		files, err := r.ws.ListFiles(root, true)
		if err != nil {
			continue
		}
		for _, f := range files {
			if filepath.Base(f) == want {
				return f
			}
		}
	}
	return ""
}
