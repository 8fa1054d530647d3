// Package scaffold provides templates for code generation.
package scaffold

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed repository/*.tmpl
var scaffoldTemplates embed.FS

// GetRepositoryTemplate returns the content of the repository template.
func GetRepositoryTemplate() (string, error) {
	content, err := scaffoldTemplates.ReadFile("repository/repository.go.tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// TemplateFuncs returns the template function map for scaffold templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"toLower": strings.ToLower,
		"toUpper": strings.ToUpper,
		"title":   capitalize,
		"join":    strings.Join,
	}
}

// capitalize returns the string with the first letter uppercased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
