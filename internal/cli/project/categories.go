package project

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bach-end/Portfolio/internal/cli"
	"github.com/bach-end/Portfolio/internal/cli/styles"
	"github.com/bach-end/Portfolio/internal/models"
)

// CategoriesCmd returns the project categories subcommand
func CategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the values accepted by --category",
		Args:  cobra.NoArgs,
		RunE:  runCategories,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCategories(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	categories, err := cliInstance.App.ProjectService.GetCategories(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	if formatter.Quiet {
		for _, c := range categories {
			fmt.Println(c)
		}
		return nil
	}

	if formatter.JSON {
		return cli.PrintJSON("categories", categories)
	}

	for _, c := range categories {
		if c == models.CategoryAll {
			fmt.Printf("  %s %s\n", "✱", styles.ValueStyle.Render("All Projects ("+c+")"))
			continue
		}
		fmt.Printf("  %s %s\n", styles.CategoryGlyph(c), styles.ValueStyle.Render(c))
	}
	return nil
}
