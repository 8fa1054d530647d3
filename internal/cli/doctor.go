package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/restforge/restforge/internal/config"
	"github.com/restforge/restforge/internal/db"
)

// DoctorCmd returns the doctor command
func DoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the restforge setup",
		Long: `Check that the configuration is present, the repositories root
exists, and the schema database is reachable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			healthy := true

			cfg, err := config.LoadConfig(cwd)
			if err != nil {
				reportCheck(false, "config: %v (run 'restforge init')", err)
				cfg = config.Default()
				healthy = false
			} else {
				reportCheck(true, "config: .restforge/config.json")
			}

			reposRoot := filepath.Join(cwd, cfg.RepositoriesRoot)
			if info, err := os.Stat(reposRoot); err == nil && info.IsDir() {
				reportCheck(true, "repositories root: %s", cfg.RepositoriesRoot)
			} else {
				// Not fatal: generation creates it on first write.
				reportCheck(true, "repositories root: %s (will be created)", cfg.RepositoriesRoot)
			}

			if err := pingDatabase(cfg); err != nil {
				reportCheck(false, "schema database (%s): %v", cfg.Driver, err)
				healthy = false
			} else {
				reportCheck(true, "schema database (%s): reachable", cfg.Driver)
			}

			if !healthy {
				return fmt.Errorf("some checks failed")
			}
			fmt.Println()
			fmt.Println("All checks passed.")
			return nil
		},
	}
}

func pingDatabase(cfg *config.Config) error {
	conn, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return conn.PingContext(ctx)
}

func reportCheck(ok bool, format string, args ...interface{}) {
	mark := color.GreenString("✓")
	if !ok {
		mark = color.RedString("✗")
	}
	fmt.Printf("%s %s\n", mark, fmt.Sprintf(format, args...))
}
