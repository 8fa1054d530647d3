// Package wire provides dependency injection for the restforge CLI.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"

	"github.com/restforge/restforge/internal/adapters/filesystem"
	"github.com/restforge/restforge/internal/adapters/postgres"
	"github.com/restforge/restforge/internal/adapters/sqlite"
	"github.com/restforge/restforge/internal/app"
	"github.com/restforge/restforge/internal/config"
	"github.com/restforge/restforge/internal/db"
	"github.com/restforge/restforge/internal/ports/primary"
	"github.com/restforge/restforge/internal/ports/secondary"
)

var (
	generationService primary.GenerationService
	workspace         secondary.Workspace
	once              sync.Once
)

// GenerationService returns the singleton GenerationService instance.
func GenerationService() primary.GenerationService {
	once.Do(initServices)
	return generationService
}

// Workspace returns the singleton workspace adapter.
func Workspace() secondary.Workspace {
	once.Do(initServices)
	return workspace
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	cfg, err := config.LoadOrDefault(cwd)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	database, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open schema database: %v", err)
	}

	var schema secondary.SchemaProvider
	switch cfg.Driver {
	case config.DriverPostgres:
		schema = postgres.NewSchemaProvider(database, cfg.PostgresSchema)
	default:
		schema = sqlite.NewSchemaProvider(database)
	}

	ws := filesystem.NewWorkspaceAdapter()
	workspace = ws
	generationService = app.NewGenerationService(cfg, cwd, ws, schema)
}
