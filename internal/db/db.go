// Package db opens the schema database connection for restforge.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/restforge/restforge/internal/config"
)

// Open opens the schema database described by cfg. database/sql
// connections are lazy, so reachability problems surface on first use,
// not here.
func Open(cfg *config.Config) (*sql.DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		conn, err := sql.Open("sqlite3", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return conn, nil
	case config.DriverPostgres:
		conn, err := sql.Open("pgx", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unknown driver %q (valid: %s, %s)", cfg.Driver, config.DriverSQLite, config.DriverPostgres)
	}
}
