package pattern

import (
	"path/filepath"
	"strings"

	"github.com/restforge/restforge/internal/ports/secondary"
)

// Detector inspects existing repository locations and picks the
// project's organizational convention.
type Detector struct {
	ws secondary.Workspace
}

// NewDetector creates a new Detector over the given workspace.
func NewDetector(ws secondary.Workspace) *Detector {
	return &Detector{ws: ws}
}

// Result is the outcome of a detection run.
type Result struct {
	Pattern   string
	TargetDir string
	Scanned   []Location
}

// Detect decides where a repository for modelName should be created,
// preferring consistency with existing repositories.
//
// The repositories root is scanned first; when it holds no repository
// files the whole project tree is scanned instead. Every discovered
// file is classified, matches are tallied per pattern, and the pattern
// with the most matches wins, ties breaking by precedence. With zero
// files found anywhere the result is Flat and the repositories root.
// Detection is read-only and never fails: an unreadable or missing
// directory counts as zero files.
func (d *Detector) Detect(projectRoot, reposRoot, modelName string) Result {
	locations := d.scan(reposRoot, reposRoot)
	if len(locations) == 0 {
		locations = d.scan(projectRoot, reposRoot)
	}

	winner := Flat
	if len(locations) > 0 {
		tally := make(map[string]int)
		for _, loc := range locations {
			tally[loc.Pattern]++
		}
		winner = ""
		for p, n := range tally {
			if winner == "" || n > tally[winner] || (n == tally[winner] && morePrecedent(p, winner)) {
				winner = p
			}
		}
	}

	return Result{
		Pattern:   winner,
		TargetDir: TargetDir(winner, reposRoot, modelName),
		Scanned:   locations,
	}
}

// scan lists repository files under dir and classifies each one.
// Files under the repositories root are classified against it so both
// scan passes agree on shape; anything else is judged against dir.
func (d *Detector) scan(dir, reposRoot string) []Location {
	files, err := d.ws.ListFiles(dir, true)
	if err != nil {
		return nil
	}

	var locations []Location
	for _, f := range files {
		if !strings.HasSuffix(f, RepositorySuffix) {
			continue
		}
		base := dir
		if within(reposRoot, f) {
			base = reposRoot
		}
		if loc, ok := Classify(base, f); ok {
			locations = append(locations, loc)
		}
	}
	return locations
}

func within(base, path string) bool {
	if base == "" {
		return false
	}
	return strings.HasPrefix(path, base+string(filepath.Separator))
}
