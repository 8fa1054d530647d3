package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/restforge/restforge/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default restforge configuration",
		Long: `Create .restforge/config.json in the current directory with
conventional defaults. Edit it to point at your schema database and
repositories root.

Examples:
  restforge init
  restforge init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			path := filepath.Join(cwd, ".restforge", "config.json")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.SaveConfig(cwd, config.Default()); err != nil {
				return err
			}

			fmt.Printf("%s Created %s\n", color.GreenString("✓"), path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config")

	return cmd
}
