// Package plan assembles the generation plan for a new repository.
// Planning is a pure function over pre-fetched data: nothing is read
// or written here, so a failure during inference can never leave a
// half-written file behind.
package plan

import (
	"path/filepath"

	"github.com/restforge/restforge/internal/core/inference"
	"github.com/restforge/restforge/internal/core/pattern"
)

// Input contains pre-fetched data for building a generation plan.
type Input struct {
	ModelName         string
	TableName         string
	Pattern           string
	TargetDir         string
	Fields            []inference.Column
	Relations         []inference.Relationship
	DestinationExists bool
}

// GenerationPlan is the sole artifact the core produces. It is handed
// to the template renderer and discarded once rendered to text.
type GenerationPlan struct {
	ModelName  string
	TableName  string
	Pattern    string
	TargetPath string
	Fields     []inference.Column
	Relations  []inference.Relationship
	Overwrite  bool
}

// Build creates a GenerationPlan from pre-fetched input.
func Build(in Input) GenerationPlan {
	return GenerationPlan{
		ModelName:  in.ModelName,
		TableName:  in.TableName,
		Pattern:    in.Pattern,
		TargetPath: filepath.Join(in.TargetDir, pattern.FileName(in.ModelName)),
		Fields:     in.Fields,
		Relations:  in.Relations,
		Overwrite:  in.DestinationExists,
	}
}

// BelongsTo returns the owning-side relations of the plan.
func (p GenerationPlan) BelongsTo() []inference.Relationship {
	return p.relationsOfKind(inference.KindBelongsTo)
}

// HasMany returns the reverse one-to-many relations of the plan.
func (p GenerationPlan) HasMany() []inference.Relationship {
	return p.relationsOfKind(inference.KindHasMany)
}

func (p GenerationPlan) relationsOfKind(kind string) []inference.Relationship {
	var out []inference.Relationship
	for _, r := range p.Relations {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}
