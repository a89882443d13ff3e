package project

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bach-end/Portfolio/internal/cli"
	"github.com/bach-end/Portfolio/internal/cli/styles"
)

// StatsCmd returns the project stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the project catalog",
		Long:  "Count projects by status and the distinct technologies used across them.",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}

	cli.AddJSONFlag(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	stats, err := cliInstance.App.ProjectService.GetStats(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	if formatter.JSON {
		return cli.PrintJSON("stats", stats)
	}

	rows := []struct {
		label string
		value int
	}{
		{"Total Projects", stats.Total},
		{"Completed", stats.Completed},
		{"In Progress", stats.InProgress},
		{"Planned", stats.Planned},
		{"Technologies", stats.Technologies},
	}
	for _, row := range rows {
		fmt.Printf("%s %s\n",
			styles.LabelStyle.Render(fmt.Sprintf("%-15s", row.label)),
			styles.ValueStyle.Render(fmt.Sprintf("%d", row.value)))
	}
	return nil
}
