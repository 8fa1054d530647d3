package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.Driver = DriverPostgres
	cfg.DSN = "postgres://localhost/blog"
	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Driver != DriverPostgres {
		t.Errorf("Driver = %q, want %q", loaded.Driver, DriverPostgres)
	}
	if loaded.DSN != "postgres://localhost/blog" {
		t.Errorf("DSN = %q", loaded.DSN)
	}
	if loaded.RepositoriesRoot != DefaultRepositoriesRoot {
		t.Errorf("RepositoriesRoot = %q, want %q", loaded.RepositoriesRoot, DefaultRepositoriesRoot)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if err == nil {
		t.Fatal("LoadConfig() error = nil, want error")
	}
}

func TestLoadOrDefaultMissing(t *testing.T) {
	cfg, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if cfg.RepositoriesRoot != DefaultRepositoriesRoot {
		t.Errorf("RepositoriesRoot = %q, want %q", cfg.RepositoriesRoot, DefaultRepositoriesRoot)
	}
	if cfg.Driver != DriverSQLite {
		t.Errorf("Driver = %q, want %q", cfg.Driver, DriverSQLite)
	}
}

func TestLoadOrDefaultMalformed(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, ".restforge")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadOrDefault(dir); err == nil {
		t.Fatal("LoadOrDefault() error = nil, want parse error")
	}
}

func TestMinimalConfigGetsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, ".restforge")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	minimal := `{"version":"1.0","dsn":"blog.db"}`
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(minimal), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.RepositoriesRoot != DefaultRepositoriesRoot {
		t.Errorf("RepositoriesRoot = %q, want %q", cfg.RepositoriesRoot, DefaultRepositoriesRoot)
	}
	if len(cfg.ProbeRoots) == 0 {
		t.Error("ProbeRoots not defaulted")
	}
	if cfg.Driver != DriverSQLite {
		t.Errorf("Driver = %q, want %q", cfg.Driver, DriverSQLite)
	}
	if cfg.PostgresSchema != "public" {
		t.Errorf("PostgresSchema = %q, want public", cfg.PostgresSchema)
	}
}
