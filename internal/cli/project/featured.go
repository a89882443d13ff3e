package project

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bach-end/Portfolio/internal/cli"
	"github.com/bach-end/Portfolio/internal/cli/styles"
)

// FeaturedCmd returns the project featured subcommand
func FeaturedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "featured",
		Short: "List the projects highlighted on the home page",
		Args:  cobra.NoArgs,
		RunE:  runFeatured,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runFeatured(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	projects, err := cliInstance.App.ProjectService.GetFeaturedProjects(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	if formatter.Quiet {
		cli.PrintIDs(projects)
		return nil
	}

	if formatter.JSON {
		return cli.PrintJSON("projects", projects)
	}

	if len(projects) == 0 {
		fmt.Println("No featured projects")
		return nil
	}

	fmt.Println(styles.SectionStyle.Render("Featured Projects"))
	fmt.Println()
	for _, p := range projects {
		printProjectLine(p)
	}
	return nil
}
