package scaffold

import (
	"strings"
	"testing"
)

func TestGenerateRepository(t *testing.T) {
	gen := NewGenerator()

	content, err := gen.GenerateRepository(&RepositorySpec{
		Package: "comments",
		Model:   "Comment",
		Table:   "comments",
		Fields: []FieldSpec{
			{Column: "body"},
			{Column: "edited_at", Nullable: true},
		},
		BelongsTo: []RelationSpec{
			{Name: "post", RelatedModel: "Post", RelatedRepository: "PostRepository"},
			{Name: "user", RelatedModel: "User"},
		},
		HasMany: []RelationSpec{
			{Name: "reactions", RelatedModel: "Reaction"},
		},
	})
	if err != nil {
		t.Fatalf("GenerateRepository() error = %v", err)
	}

	wantLines := []string{
		"package comments",
		"type CommentRepository struct{}",
		`func (CommentRepository) Table() string { return "comments" }`,
		`"id",`,
		`"body",`,
		`"edited_at", // nullable`,
		`"post": "PostRepository",`,
		`"user": "",`,
		`"reactions": "",`,
	}
	for _, line := range wantLines {
		if !strings.Contains(content, line) {
			t.Errorf("generated content missing %q\n%s", line, content)
		}
	}

	// The identity column is never duplicated.
	if strings.Count(content, `"id",`) != 1 {
		t.Errorf("identity column emitted more than once\n%s", content)
	}
}

func TestGenerateRepositoryMinimal(t *testing.T) {
	gen := NewGenerator()

	content, err := gen.GenerateRepository(&RepositorySpec{
		Package: "repositories",
		Model:   "Widget",
		Table:   "widgets",
	})
	if err != nil {
		t.Fatalf("GenerateRepository() error = %v", err)
	}

	if !strings.Contains(content, "type WidgetRepository struct{}") {
		t.Errorf("missing repository type\n%s", content)
	}
	if strings.Contains(content, "BelongsTo") || strings.Contains(content, "HasMany") {
		t.Errorf("relation methods emitted for relation-free spec\n%s", content)
	}
	if !strings.Contains(content, `"id",`) {
		t.Errorf("identity column missing\n%s", content)
	}
}
