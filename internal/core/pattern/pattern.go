// Package pattern classifies how a host project organizes its generated
// repository files and decides where a new one should be created.
package pattern

import (
	"path/filepath"
	"strings"

	"github.com/restforge/restforge/internal/scaffold"
)

// Organization pattern constants, ordered by decreasing specificity.
// Tie-breaks between patterns always follow this order.
const (
	GroupedByModel = "grouped_by_model" // root/<plural-model>/<model>_repository.go
	DomainDriven   = "domain_driven"    // root/domains/<model>/<model>_repository.go
	ModuleBased    = "module_based"     // root/<module>/<model>_repository.go
	Flat           = "flat"             // root/<model>_repository.go
)

// RepositorySuffix is the file-name suffix of generated repositories.
const RepositorySuffix = "_repository.go"

// domainsSegment is the fixed directory name of the domain-driven shape.
const domainsSegment = "domains"

// precedence ranks patterns for tie-breaking; lower wins.
var precedence = map[string]int{
	GroupedByModel: 0,
	DomainDriven:   1,
	ModuleBased:    2,
	Flat:           3,
}

// Location is a discovered existing repository file: where it lives,
// which model it represents, and which pattern shape it matches.
type Location struct {
	Path    string
	Model   string
	Pattern string
}

// ModelFromFile derives the model name from a repository file name.
// Returns false when the name is not a repository file.
func ModelFromFile(name string) (string, bool) {
	if !strings.HasSuffix(name, RepositorySuffix) {
		return "", false
	}
	base := strings.TrimSuffix(name, RepositorySuffix)
	if base == "" {
		return "", false
	}
	return scaffold.ToPascalCase(base), true
}

// Classify determines the organizational shape of a repository file at
// path, judged against base. Matching is structural (segment count and
// naming shape); a path can in principle fit several shapes, so the
// single most specific one is returned. Returns false for paths outside
// base, non-repository files, and shapes deeper than any known pattern.
func Classify(base, path string) (Location, bool) {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return Location{}, false
	}

	segs := strings.Split(filepath.ToSlash(rel), "/")
	file := segs[len(segs)-1]
	model, ok := ModelFromFile(file)
	if !ok {
		return Location{}, false
	}
	modelSnake := scaffold.ToSnakeCase(model)

	loc := Location{Path: path, Model: model}
	switch len(segs) {
	case 1:
		loc.Pattern = Flat
	case 2:
		if segs[0] == scaffold.Pluralize(modelSnake) {
			loc.Pattern = GroupedByModel
		} else {
			loc.Pattern = ModuleBased
		}
	case 3:
		if segs[0] != domainsSegment || segs[1] != modelSnake {
			return Location{}, false
		}
		loc.Pattern = DomainDriven
	default:
		return Location{}, false
	}
	return loc, true
}

// TargetDir applies a pattern's directory template to a model name.
// Module membership cannot be derived from a model name, so the
// module-based template places each model in its own directory.
func TargetDir(p, root, modelName string) string {
	modelSnake := scaffold.ToSnakeCase(modelName)
	switch p {
	case GroupedByModel:
		return filepath.Join(root, scaffold.Pluralize(modelSnake))
	case DomainDriven:
		return filepath.Join(root, domainsSegment, modelSnake)
	case ModuleBased:
		return filepath.Join(root, modelSnake)
	default:
		return root
	}
}

// FileName returns the repository file name for a model.
func FileName(modelName string) string {
	return scaffold.ToSnakeCase(modelName) + RepositorySuffix
}

// morePrecedent reports whether pattern a outranks pattern b.
func morePrecedent(a, b string) bool {
	return precedence[a] < precedence[b]
}
