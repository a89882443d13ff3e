package team

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bach-end/Portfolio/internal/cli"
	"github.com/bach-end/Portfolio/internal/cli/styles"
)

// ListCmd returns the team list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List team members",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

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

	members, err := cliInstance.App.TeamService.GetAllMembers(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	if formatter.Quiet {
		cli.PrintIDs(members)
		return nil
	}

	if formatter.JSON {
		return cli.PrintJSON("members", members)
	}

	if len(members) == 0 {
		fmt.Println("No team members found")
		return nil
	}

	fmt.Printf("Found %d team members:\n\n", len(members))
	for _, m := range members {
		fmt.Printf("  %s  %s\n", styles.TitleStyle.Render(m.Name), styles.SubtitleStyle.Render("("+m.ID+")"))
		fmt.Printf("     %s\n", styles.ValueStyle.Render(m.Role))
		if len(m.Skills) > 0 {
			fmt.Printf("     %s\n", styles.SubtitleStyle.Render(strings.Join(m.Skills, " · ")))
		}
		fmt.Println()
	}
	return nil
}
