// Package primary defines the primary (driving) ports for restforge.
package primary

import (
	"context"

	"github.com/restforge/restforge/internal/core/plan"
)

// GenerateRepositoryRequest describes a repository to scaffold.
type GenerateRepositoryRequest struct {
	Name     string // repository base name, e.g. "PostRepository" or "post"
	Table    string // optional override of the derived table name
	NoFields bool   // skip schema inference, emit only the identity field
}

// GenerateRepositoryResponse carries the computed plan and the
// rendered file content. Nothing has been written yet; the caller owns
// confirmation and writing.
type GenerateRepositoryResponse struct {
	Plan    plan.GenerationPlan
	Content string
}

// GenerationService plans repository generation.
type GenerationService interface {
	PlanRepository(ctx context.Context, req GenerateRepositoryRequest) (*GenerateRepositoryResponse, error)
}
