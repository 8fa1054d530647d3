// Package secondary defines the secondary (driven) ports for restforge.
// Adapters in internal/adapters implement these interfaces.
package secondary

import (
	"context"
	"errors"
)

// ErrSchemaUnavailable indicates the schema database could not be
// reached or queried. Generation aborts when this is returned.
var ErrSchemaUnavailable = errors.New("schema unavailable")

// ColumnInfo describes a single column of a database table.
type ColumnInfo struct {
	Name     string
	Nullable bool
}

// SchemaProvider exposes read-only database schema metadata.
type SchemaProvider interface {
	// ListColumns returns the columns of table in native column order.
	// A missing table yields an empty slice, not an error.
	ListColumns(ctx context.Context, table string) ([]ColumnInfo, error)

	// ListTables returns the names of all base tables.
	ListTables(ctx context.Context) ([]string, error)
}
