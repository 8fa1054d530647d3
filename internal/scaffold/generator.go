package scaffold

import (
	"bytes"
	"fmt"
	"text/template"

	scaffoldtmpl "github.com/restforge/restforge/internal/templates/scaffold"
)

// Generator generates code from templates.
type Generator struct {
	funcs template.FuncMap
}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{
		funcs: scaffoldtmpl.TemplateFuncs(),
	}
}

// GenerateRepository renders the repository source file for spec.
func (g *Generator) GenerateRepository(spec *RepositorySpec) (string, error) {
	tmplContent, err := scaffoldtmpl.GetRepositoryTemplate()
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("repository").Funcs(g.funcs).Parse(tmplContent)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, spec); err != nil {
		return "", fmt.Errorf("failed to render repository: %w", err)
	}

	return buf.String(), nil
}
