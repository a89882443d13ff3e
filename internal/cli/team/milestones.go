package team

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/bach-end/Portfolio/internal/cli"
	"github.com/bach-end/Portfolio/internal/cli/styles"
)

// MilestonesCmd returns the team milestones subcommand
func MilestonesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "milestones",
		Aliases: []string{"timeline"},
		Short:   "Show the team's journey",
		Args:    cobra.NoArgs,
		RunE:    runMilestones,
	}

	cli.AddJSONFlag(cmd)

	return cmd
}

func runMilestones(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	entries, err := cliInstance.App.TeamService.GetTimeline(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	if formatter.JSON {
		return cli.PrintJSON("milestones", entries)
	}

	if len(entries) == 0 {
		fmt.Println("No milestones yet")
		return nil
	}

	monthWidth := 3
	for _, e := range entries {
		monthWidth = max(monthWidth, lipgloss.Width(e.Date.Month))
	}
	indent := strings.Repeat(" ", monthWidth+1+4+2)

	for _, e := range entries {
		fmt.Printf("%s %s  %s\n",
			styles.LabelStyle.Render(padRight(e.Date.Month, monthWidth)),
			styles.TitleStyle.Render(fmt.Sprintf("%-4s", e.Date.Year)),
			styles.ValueStyle.Render(e.Title))
		if e.Description != "" {
			fmt.Printf("%s%s\n", indent, styles.SubtitleStyle.Render(e.Description))
		}
	}
	return nil
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}
