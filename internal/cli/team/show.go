package team

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bach-end/Portfolio/internal/cli"
	"github.com/bach-end/Portfolio/internal/cli/styles"
	"github.com/bach-end/Portfolio/internal/models"
)

// ShowCmd returns the team show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <member-id>",
		Short: "Show a team member's profile",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	member, err := cliInstance.App.TeamService.GetMemberByID(ctx, args[0])
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	if formatter.Quiet {
		return formatter.Success(member)
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"member":  member,
		})
	}

	fmt.Println(styles.RenderCard(formatMemberCard(member)))
	return nil
}

func formatMemberCard(m *models.TeamMember) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(m.Name))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(m.Role))
	b.WriteString("\n")

	if m.Bio != "" {
		b.WriteString("\n")
		b.WriteString(styles.ValueStyle.Width(styles.CardWidth - 6).Render(m.Bio))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Location != "" {
		b.WriteString(styles.LabelStyle.Render("Location: ") + styles.ValueStyle.Render(m.Location) + "\n")
	}
	if m.Experience != "" {
		b.WriteString(styles.LabelStyle.Render("Experience: ") + styles.ValueStyle.Render(m.Experience) + "\n")
	}

	if len(m.Skills) > 0 {
		b.WriteString(styles.SectionStyle.Render("Skills"))
		b.WriteString("\n")
		b.WriteString(styles.RenderTechChips(m.Skills))
		b.WriteString("\n")
	}

	if len(m.Social) > 0 {
		b.WriteString(styles.SectionStyle.Render("Social"))
		b.WriteString("\n")
		platforms := make([]string, 0, len(m.Social))
		for platform := range m.Social {
			platforms = append(platforms, platform)
		}
		slices.Sort(platforms)
		for _, platform := range platforms {
			b.WriteString(styles.LabelStyle.Render(platform+": ") + styles.ValueStyle.Render(m.Social[platform]) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
