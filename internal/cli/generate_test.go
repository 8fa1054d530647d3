package cli

import (
	"strings"
	"testing"

	"github.com/restforge/restforge/internal/core/inference"
	"github.com/restforge/restforge/internal/core/plan"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes word", "yes\n", true},
		{"uppercase", "Y\n", true},
		{"no", "n\n", false},
		{"empty", "\n", false},
		{"garbage", "maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := confirm(strings.NewReader(tt.input), ""); got != tt.want {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPrintPlan(t *testing.T) {
	p := plan.GenerationPlan{
		ModelName: "Comment",
		TableName: "comments",
		Fields: []inference.Column{
			{Name: "body"},
			{Name: "edited_at", Nullable: true},
		},
		Relations: []inference.Relationship{
			{Kind: inference.KindBelongsTo, Name: "post", RelatedModel: "Post", RelatedRepository: "x"},
			{Kind: inference.KindHasMany, Name: "reactions", RelatedModel: "Reaction"},
		},
	}

	var buf strings.Builder
	printPlan(&buf, p)
	out := buf.String()

	for _, want := range []string{"id", "body", "edited_at", "post", "reactions", "(auto-resolved)"} {
		if !strings.Contains(out, want) {
			t.Errorf("plan output missing %q:\n%s", want, out)
		}
	}
}
