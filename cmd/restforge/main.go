package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/restforge/restforge/internal/cli"
	"github.com/restforge/restforge/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "restforge",
		Short:   "restforge - scaffold REST API repositories from your database schema",
		Version: version.String(),
		Long: `restforge generates REST API repository source files for a Go project.
It detects how existing repositories are organized, inspects the live
database schema, and turns foreign keys into relationship declarations.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.GenerateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
