// Package app implements the primary ports over the core packages.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/restforge/restforge/internal/config"
	"github.com/restforge/restforge/internal/core/inference"
	"github.com/restforge/restforge/internal/core/pattern"
	"github.com/restforge/restforge/internal/core/plan"
	"github.com/restforge/restforge/internal/logging"
	"github.com/restforge/restforge/internal/ports/primary"
	"github.com/restforge/restforge/internal/ports/secondary"
	"github.com/restforge/restforge/internal/scaffold"
)

// GenerationService implements primary.GenerationService.
type GenerationService struct {
	cfg         *config.Config
	projectRoot string
	ws          secondary.Workspace
	schema      secondary.SchemaProvider
	detector    *pattern.Detector
	gen         *scaffold.Generator
}

// NewGenerationService creates a GenerationService. projectRoot is the
// directory the host project is rooted at, usually the cwd.
func NewGenerationService(cfg *config.Config, projectRoot string, ws secondary.Workspace, schema secondary.SchemaProvider) *GenerationService {
	return &GenerationService{
		cfg:         cfg,
		projectRoot: projectRoot,
		ws:          ws,
		schema:      schema,
		detector:    pattern.NewDetector(ws),
		gen:         scaffold.NewGenerator(),
	}
}

// PlanRepository computes the full generation plan and renders the
// repository source. The plan is complete before anything is written;
// writing is the caller's responsibility, gated on the Overwrite flag.
func (s *GenerationService) PlanRepository(ctx context.Context, req primary.GenerateRepositoryRequest) (*primary.GenerateRepositoryResponse, error) {
	model := deriveModelName(req.Name)
	if model == "" {
		return nil, fmt.Errorf("repository name is required")
	}

	table := req.Table
	if table == "" {
		table = scaffold.Pluralize(scaffold.ToSnakeCase(model))
	}

	reposRoot := filepath.Join(s.projectRoot, s.cfg.RepositoriesRoot)
	det := s.detector.Detect(s.projectRoot, reposRoot, model)
	logging.Debug("detected organization pattern",
		"pattern", det.Pattern, "existing", len(det.Scanned), "target", det.TargetDir)

	var fields []inference.Column
	var relations []inference.Relationship
	if !req.NoFields {
		resolver := inference.NewResolver(s.ws, s.probeRoots())
		inferencer := inference.NewInferencer(s.schema, resolver)
		var err error
		fields, relations, err = inferencer.Infer(ctx, table)
		if err != nil {
			return nil, err
		}
	}

	targetPath := filepath.Join(det.TargetDir, pattern.FileName(model))
	exists, err := s.ws.Exists(targetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check destination: %w", err)
	}

	p := plan.Build(plan.Input{
		ModelName:         model,
		TableName:         table,
		Pattern:           det.Pattern,
		TargetDir:         det.TargetDir,
		Fields:            fields,
		Relations:         relations,
		DestinationExists: exists,
	})

	content, err := s.gen.GenerateRepository(repositorySpec(p))
	if err != nil {
		return nil, err
	}

	return &primary.GenerateRepositoryResponse{Plan: p, Content: content}, nil
}

// probeRoots returns the configured probe roots anchored at the
// project root.
func (s *GenerationService) probeRoots() []string {
	roots := make([]string, 0, len(s.cfg.ProbeRoots))
	for _, r := range s.cfg.ProbeRoots {
		roots = append(roots, filepath.Join(s.projectRoot, r))
	}
	return roots
}

// repositorySpec translates a generation plan into the renderer input.
func repositorySpec(p plan.GenerationPlan) *scaffold.RepositorySpec {
	spec := &scaffold.RepositorySpec{
		Package: packageName(filepath.Dir(p.TargetPath)),
		Model:   p.ModelName,
		Table:   p.TableName,
	}
	for _, f := range p.Fields {
		spec.Fields = append(spec.Fields, scaffold.FieldSpec{Column: f.Name, Nullable: f.Nullable})
	}
	for _, r := range p.BelongsTo() {
		spec.BelongsTo = append(spec.BelongsTo, relationSpec(r))
	}
	for _, r := range p.HasMany() {
		spec.HasMany = append(spec.HasMany, relationSpec(r))
	}
	return spec
}

func relationSpec(r inference.Relationship) scaffold.RelationSpec {
	spec := scaffold.RelationSpec{Name: r.Name, RelatedModel: r.RelatedModel}
	if r.RelatedRepository != "" {
		spec.RelatedRepository = r.RelatedModel + "Repository"
	}
	return spec
}

// deriveModelName normalizes the user-supplied repository name to a
// PascalCase model name, tolerating a trailing "Repository".
func deriveModelName(name string) string {
	pascal := scaffold.ToPascalCase(name)
	return strings.TrimSuffix(pascal, "Repository")
}

// packageName derives a Go package name from the target directory.
func packageName(dir string) string {
	base := filepath.Base(dir)
	base = strings.ReplaceAll(base, "-", "")
	base = strings.ReplaceAll(base, "_", "")
	if base == "" || base == "." {
		return "repositories"
	}
	return strings.ToLower(base)
}

// Ensure GenerationService implements the interface
var _ primary.GenerationService = (*GenerationService)(nil)
