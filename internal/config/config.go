package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Driver constants for the schema connection.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// DefaultRepositoriesRoot is the primary conventional directory for
// generated repositories.
const DefaultRepositoriesRoot = "internal/repositories"

// legacyRepositoriesRoot is probed after the primary root when resolving
// related repositories in older project layouts.
const legacyRepositoriesRoot = "app/repositories"

// Config represents the flat restforge configuration
type Config struct {
	Version          string   `json:"version"`
	RepositoriesRoot string   `json:"repositories_root"`     // where generated repositories live
	ProbeRoots       []string `json:"probe_roots,omitempty"` // ordered lookup roots for related repositories
	Driver           string   `json:"driver"`                // "sqlite3" or "postgres"
	DSN              string   `json:"dsn"`                   // connection string for the schema database
	PostgresSchema   string   `json:"postgres_schema,omitempty"`
}

// Default returns a configuration with conventional defaults applied.
func Default() *Config {
	return &Config{
		Version:          "1.0",
		RepositoriesRoot: DefaultRepositoriesRoot,
		ProbeRoots:       []string{DefaultRepositoriesRoot, legacyRepositoriesRoot},
		Driver:           DriverSQLite,
		DSN:              filepath.Join(".restforge", "dev.db"),
		PostgresSchema:   "public",
	}
}

// LoadConfig reads .restforge/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".restforge", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrDefault loads the config from dir, falling back to defaults
// when no config file exists. A malformed config is still an error.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, ".restforge")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .restforge dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyDefaults fills zero-valued fields with conventional defaults so
// hand-edited configs can stay minimal.
func (c *Config) applyDefaults() {
	if c.RepositoriesRoot == "" {
		c.RepositoriesRoot = DefaultRepositoriesRoot
	}
	if len(c.ProbeRoots) == 0 {
		c.ProbeRoots = []string{c.RepositoriesRoot, legacyRepositoriesRoot}
	}
	if c.Driver == "" {
		c.Driver = DriverSQLite
	}
	if c.PostgresSchema == "" {
		c.PostgresSchema = "public"
	}
}
