package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/restforge/restforge/internal/core/plan"
	"github.com/restforge/restforge/internal/ports/primary"
	"github.com/restforge/restforge/internal/ports/secondary"
	"github.com/restforge/restforge/internal/wire"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate [name]",
		Aliases: []string{"gen"},
		Short:   "Generate a repository for a database table",
		Long: `Generate a REST API repository source file for a database table.

The destination directory follows the organizational pattern of the
existing repositories in the project (grouped-by-model, domain-driven,
module-based, or flat). Fields and relationships are inferred from the
live database schema: <name>_id columns become belongs-to relations,
and tables referencing this one become has-many relations.

Examples:
  restforge generate PostRepository
  restforge generate comment --table comments --force
  restforge generate user --no-fields --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tableName, _ := cmd.Flags().GetString("table")
			force, _ := cmd.Flags().GetBool("force")
			noFields, _ := cmd.Flags().GetBool("no-fields")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			return runGenerate(context.Background(), args[0], tableName, force, noFields, dryRun)
		},
	}

	cmd.Flags().String("table", "", "Override the derived table name")
	cmd.Flags().Bool("force", false, "Overwrite the destination without confirmation")
	cmd.Flags().Bool("no-fields", false, "Skip schema inference, emit only the identity field")
	cmd.Flags().Bool("dry-run", false, "Preview without writing files")

	return cmd
}

func runGenerate(ctx context.Context, name, tableName string, force, noFields, dryRun bool) error {
	resp, err := wire.GenerationService().PlanRepository(ctx, primary.GenerateRepositoryRequest{
		Name:     name,
		Table:    tableName,
		NoFields: noFields,
	})
	if err != nil {
		if errors.Is(err, secondary.ErrSchemaUnavailable) {
			return err
		}
		return fmt.Errorf("failed to plan repository: %w", err)
	}
	p := resp.Plan

	fmt.Printf("Generating %sRepository for table %s\n", p.ModelName, color.CyanString(p.TableName))
	fmt.Printf("Pattern: %s\n", color.CyanString(p.Pattern))
	fmt.Printf("Target:  %s\n", p.TargetPath)
	fmt.Println()
	printPlan(os.Stdout, p)

	if dryRun {
		fmt.Println("(dry-run mode - no files written)")
		fmt.Println()
		fmt.Printf("--- %s ---\n", p.TargetPath)
		fmt.Println(resp.Content)
		return nil
	}

	if p.Overwrite && !force {
		color.Yellow("%s already exists.", p.TargetPath)
		if !confirm(os.Stdin, "Overwrite? [y/N] ") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := wire.Workspace().WriteFile(p.TargetPath, []byte(resp.Content)); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.TargetPath, err)
	}
	fmt.Printf("%s Created %s\n", color.GreenString("✓"), p.TargetPath)
	return nil
}

// printPlan renders the planned fields and relations as tables.
func printPlan(w io.Writer, p plan.GenerationPlan) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Field", "Nullable"})
	t.AppendRow(table.Row{"id", ""})
	for _, f := range p.Fields {
		nullable := ""
		if f.Nullable {
			nullable = "yes"
		}
		t.AppendRow(table.Row{f.Name, nullable})
	}
	t.Render()
	fmt.Fprintln(w)

	if len(p.Relations) == 0 {
		return
	}
	t = table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Relation", "Kind", "Model", "Repository"})
	for _, r := range p.Relations {
		target := r.RelatedModel + "Repository"
		if r.RelatedRepository == "" {
			target = "(auto-resolved)"
		}
		t.AppendRow(table.Row{r.Name, r.Kind, r.RelatedModel, target})
	}
	t.Render()
	fmt.Fprintln(w)
}

// confirm prompts for a yes/no answer; only "y"/"yes" proceed.
func confirm(in io.Reader, prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(in)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
