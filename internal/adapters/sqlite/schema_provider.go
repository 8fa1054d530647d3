// Package sqlite contains the SQLite-backed schema provider.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/restforge/restforge/internal/logging"
	"github.com/restforge/restforge/internal/ports/secondary"
)

// SchemaProvider implements secondary.SchemaProvider over a SQLite
// database using PRAGMA table_info and sqlite_master.
type SchemaProvider struct {
	db *sql.DB
}

// NewSchemaProvider creates a schema provider with an injected DB.
func NewSchemaProvider(db *sql.DB) *SchemaProvider {
	return &SchemaProvider{db: db}
}

// ListColumns returns the columns of table in native column order.
// An unknown table yields zero rows from PRAGMA table_info, which maps
// to an empty result.
func (p *SchemaProvider) ListColumns(ctx context.Context, table string) ([]secondary.ColumnInfo, error) {
	// PRAGMA statements take no placeholders, so the identifier is quoted.
	query := fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(table))
	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query columns for %s: %v", secondary.ErrSchemaUnavailable, table, err)
	}
	defer rows.Close()

	var columns []secondary.ColumnInfo
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notnull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column info: %w", err)
		}
		columns = append(columns, secondary.ColumnInfo{
			Name:     name,
			Nullable: notnull == 0 && pk == 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating column info: %w", err)
	}

	logging.Debug("listed columns", "table", table, "count", len(columns))
	return columns, nil
}

// ListTables returns all user tables, excluding SQLite internals.
func (p *SchemaProvider) ListTables(ctx context.Context) ([]string, error) {
	rows, err := p.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
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

// quoteIdent quotes a SQLite identifier.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Ensure SchemaProvider implements the interface
var _ secondary.SchemaProvider = (*SchemaProvider)(nil)
