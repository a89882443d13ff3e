package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bach-end/Portfolio/internal/cli"
	"github.com/bach-end/Portfolio/internal/cli/styles"
	"github.com/bach-end/Portfolio/internal/models"
	projectservice "github.com/bach-end/Portfolio/internal/services/project"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long: `List projects, optionally narrowed by category and a search query.

The category matches any project whose category contains it (case-insensitive);
"all" disables the category filter. The query matches titles, descriptions and
technologies.

Examples:
  portfolio project list
  portfolio project list --category mobile
  portfolio project list --query react --json
  portfolio project list --category web --quiet`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().StringP("category", "c", models.CategoryAll, "Category filter (substring, case-insensitive)")
	cmd.Flags().StringP("query", "q", "", "Search title, description and technologies")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	category, _ := cmd.Flags().GetString("category")
	query, _ := cmd.Flags().GetString("query")

	result, err := cliInstance.App.ProjectService.ListProjects(ctx, projectservice.ListProjectsRequest{
		Category: category,
		Query:    query,
	})
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	if formatter.Quiet {
		cli.PrintIDs(result.Projects)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":  true,
			"projects": result.Projects,
			"shown":    result.Shown,
			"total":    result.Total,
		})
	}

	fmt.Println(styles.SubtitleStyle.Render(fmt.Sprintf("Showing %d of %d projects", result.Shown, result.Total)))
	if result.Shown == 0 {
		fmt.Println()
		fmt.Println("No projects found. Try a different search term or category.")
		return nil
	}

	fmt.Println()
	for _, p := range result.Projects {
		printProjectLine(p)
	}
	return nil
}

// printProjectLine writes the compact multi-line summary used by list and featured
func printProjectLine(p models.Project) {
	fmt.Printf("  %s %s  %s  %s\n",
		styles.CategoryGlyph(p.Category),
		styles.TitleStyle.Render(p.Title),
		styles.SubtitleStyle.Render("("+p.ID+")"),
		styles.RenderStatusBadge(p.Status))
	if summary := summaryOf(p); summary != "" {
		fmt.Printf("     %s\n", styles.ValueStyle.Render(summary))
	}
	if len(p.Technologies) > 0 {
		fmt.Printf("     %s\n", styles.RenderTechChips(p.Technologies))
	}
	fmt.Println()
}

func summaryOf(p models.Project) string {
	if p.ShortDescription != "" {
		return p.ShortDescription
	}
	return p.Description
}
