// Package inference derives field and relationship declarations for a
// new repository from live database schema metadata, so foreign keys
// become relationship declarations instead of duplicated plain fields.
package inference

import (
	"context"
	"fmt"
	"strings"

	"github.com/restforge/restforge/internal/ports/secondary"
	"github.com/restforge/restforge/internal/scaffold"
)

// Column role constants.
const (
	RolePlainField = "plain_field"
	RoleForeignKey = "foreign_key"
)

// Relationship kind constants.
const (
	KindBelongsTo = "belongs_to"
	KindHasMany   = "has_many"
)

// identityColumn is emitted separately by the generator and never
// appears as a plain field or a relationship.
const identityColumn = "id"

// foreignKeySuffix marks columns holding a reference to another table.
const foreignKeySuffix = "_id"

// Column describes a column of the target table with its inferred
// semantic role.
type Column struct {
	Name     string
	Nullable bool
	Role     string
}

// Relationship is a proposed relation declaration. RelatedRepository is
// empty when no existing repository matched any probe location; the
// generator then renders the relation without an explicit target,
// relying on downstream auto-resolution.
type Relationship struct {
	Kind              string
	Name              string
	RelatedModel      string
	RelatedRepository string
}

// Inferencer derives fields and relationships from a schema provider.
type Inferencer struct {
	schema   secondary.SchemaProvider
	resolver *Resolver
}

// NewInferencer creates an Inferencer. The resolver may be nil, in
// which case related repositories are left unresolved.
func NewInferencer(schema secondary.SchemaProvider, resolver *Resolver) *Inferencer {
	return &Inferencer{schema: schema, resolver: resolver}
}

// Infer produces the plain-field and relationship declarations for
// table. Plain fields keep the table's native column order, minus the
// identity column and foreign keys. BelongsTo declarations precede
// HasMany declarations, each group in discovery order. A table with
// zero columns yields empty lists; an unreachable schema provider
// fails the whole run.
func (i *Inferencer) Infer(ctx context.Context, table string) ([]Column, []Relationship, error) {
	cols, err := i.schema.ListColumns(ctx, table)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list columns for %s: %w", table, err)
	}

	var fields []Column
	var belongsTo []Relationship
	for _, col := range cols {
		if col.Name == identityColumn {
			continue
		}
		if token, ok := foreignKeyToken(col.Name); ok {
			belongsTo = append(belongsTo, i.relationship(KindBelongsTo, token, scaffold.Singularize(token)))
			continue
		}
		fields = append(fields, Column{Name: col.Name, Nullable: col.Nullable, Role: RolePlainField})
	}

	hasMany, err := i.inferHasMany(ctx, table)
	if err != nil {
		return nil, nil, err
	}

	return fields, append(belongsTo, hasMany...), nil
}

// inferHasMany scans every other table for a foreign key pointing back
// at table and emits one HasMany declaration per match.
func (i *Inferencer) inferHasMany(ctx context.Context, table string) ([]Relationship, error) {
	tables, err := i.schema.ListTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	reverseKey := scaffold.Singularize(table) + foreignKeySuffix

	var relations []Relationship
	for _, other := range tables {
		if other == table {
			continue
		}
		cols, err := i.schema.ListColumns(ctx, other)
		if err != nil {
			return nil, fmt.Errorf("failed to list columns for %s: %w", other, err)
		}
		for _, col := range cols {
			if col.Name == reverseKey {
				relations = append(relations, i.relationship(KindHasMany, other, scaffold.Singularize(other)))
				break
			}
		}
	}
	return relations, nil
}

// relationship builds a declaration and resolves its target repository.
func (i *Inferencer) relationship(kind, name, modelToken string) Relationship {
	model := scaffold.ToPascalCase(modelToken)
	rel := Relationship{Kind: kind, Name: name, RelatedModel: model}
	if i.resolver != nil {
		rel.RelatedRepository = i.resolver.Resolve(model)
	}
	return rel
}

// foreignKeyToken extracts the relation token from a column name.
// Columns shaped <token>_id qualify unless the token is "id" itself.
func foreignKeyToken(name string) (string, bool) {
	if !strings.HasSuffix(name, foreignKeySuffix) {
		return "", false
	}
	token := strings.TrimSuffix(name, foreignKeySuffix)
	if token == "" || token == identityColumn {
		return "", false
	}
	return token, true
}
