// Package postgres contains the Postgres-backed schema provider.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/restforge/restforge/internal/logging"
	"github.com/restforge/restforge/internal/ports/secondary"
)

// SchemaProvider implements secondary.SchemaProvider over a Postgres
// database by querying information_schema.
type SchemaProvider struct {
	db     *sql.DB
	schema string
}

// NewSchemaProvider creates a schema provider with an injected DB.
// An empty schema defaults to "public".
func NewSchemaProvider(db *sql.DB, schema string) *SchemaProvider {
	if schema == "" {
		schema = "public"
	}
	return &SchemaProvider{db: db, schema: schema}
}

// ListColumns returns the columns of table in ordinal position order.
// An unknown table yields an empty result.
func (p *SchemaProvider) ListColumns(ctx context.Context, table string) ([]secondary.ColumnInfo, error) {
	query := `
		SELECT column_name, is_nullable
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position`

	rows, err := p.db.QueryContext(ctx, query, p.schema, table)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query columns for %s: %v", secondary.ErrSchemaUnavailable, table, err)
	}
	defer rows.Close()

	var columns []secondary.ColumnInfo
	for rows.Next() {
		var name, nullable string
		if err := rows.Scan(&name, &nullable); err != nil {
			return nil, fmt.Errorf("failed to scan column metadata: %w", err)
		}
		columns = append(columns, secondary.ColumnInfo{
			Name:     name,
			Nullable: nullable == "YES",
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating column metadata: %w", err)
	}

	logging.Debug("listed columns", "schema", p.schema, "table", table, "count", len(columns))
	return columns, nil
}

// ListTables returns all base tables in the configured schema.
func (p *SchemaProvider) ListTables(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		ORDER BY table_name`

	rows, err := p.db.QueryContext(ctx, query, p.schema)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query tables: %v", secondary.ErrSchemaUnavailable, err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating table names: %w", err)
	}
	return tables, nil
}

// Ensure SchemaProvider implements the interface
var _ secondary.SchemaProvider = (*SchemaProvider)(nil)
