// Package scaffold provides code generation for restforge repositories.
package scaffold

// RepositorySpec contains all information needed to render a repository file.
type RepositorySpec struct {
	Package   string // Go package name derived from the target directory
	Model     string // PascalCase: "Post"
	Table     string // backing table: "posts"
	Fields    []FieldSpec
	BelongsTo []RelationSpec
	HasMany   []RelationSpec
}

// FieldSpec represents a plain attribute column.
type FieldSpec struct {
	Column   string // snake_case column name
	Nullable bool
}

// RelationSpec represents a relationship declaration.
type RelationSpec struct {
	Name              string // relation name: "user", "comments"
	RelatedModel      string // PascalCase: "User"
	RelatedRepository string // "UserRepository", or "" when unresolved
}

// GeneratedFile represents a file to be created.
type GeneratedFile struct {
	Path    string // file path relative to project root
	Content string // file content
}
