package plan

import (
	"path/filepath"
	"testing"

	"github.com/restforge/restforge/internal/core/inference"
	"github.com/restforge/restforge/internal/core/pattern"
)

func TestBuild(t *testing.T) {
	in := Input{
		ModelName: "Comment",
		TableName: "comments",
		Pattern:   pattern.GroupedByModel,
		TargetDir: filepath.Join("internal", "repositories", "comments"),
		Fields: []inference.Column{
			{Name: "body", Role: inference.RolePlainField},
		},
		Relations: []inference.Relationship{
			{Kind: inference.KindBelongsTo, Name: "post", RelatedModel: "Post"},
			{Kind: inference.KindHasMany, Name: "reactions", RelatedModel: "Reaction"},
		},
		DestinationExists: true,
	}

	p := Build(in)

	wantPath := filepath.Join("internal", "repositories", "comments", "comment_repository.go")
	if p.TargetPath != wantPath {
		t.Errorf("TargetPath = %q, want %q", p.TargetPath, wantPath)
	}
	if !p.Overwrite {
		t.Error("Overwrite = false, want true")
	}
	if p.Pattern != pattern.GroupedByModel {
		t.Errorf("Pattern = %q, want %q", p.Pattern, pattern.GroupedByModel)
	}
}

func TestRelationSplit(t *testing.T) {
	p := Build(Input{
		ModelName: "Post",
		TableName: "posts",
		Pattern:   pattern.Flat,
		TargetDir: "internal/repositories",
		Relations: []inference.Relationship{
			{Kind: inference.KindBelongsTo, Name: "user", RelatedModel: "User"},
			{Kind: inference.KindHasMany, Name: "comments", RelatedModel: "Comment"},
			{Kind: inference.KindBelongsTo, Name: "category", RelatedModel: "Category"},
		},
	})

	belongsTo := p.BelongsTo()
	if len(belongsTo) != 2 {
		t.Fatalf("len(BelongsTo()) = %d, want 2", len(belongsTo))
	}
	if belongsTo[0].Name != "user" || belongsTo[1].Name != "category" {
		t.Errorf("BelongsTo() order not preserved: %+v", belongsTo)
	}

	hasMany := p.HasMany()
	if len(hasMany) != 1 || hasMany[0].Name != "comments" {
		t.Errorf("HasMany() = %+v, want comments", hasMany)
	}
}

func TestBuildWithNoFields(t *testing.T) {
	p := Build(Input{
		ModelName: "Widget",
		TableName: "widgets",
		Pattern:   pattern.Flat,
		TargetDir: "internal/repositories",
	})

	if len(p.Fields) != 0 || len(p.Relations) != 0 {
		t.Errorf("expected empty plan lists, got %+v / %+v", p.Fields, p.Relations)
	}
	if p.Overwrite {
		t.Error("Overwrite = true, want false")
	}
}
