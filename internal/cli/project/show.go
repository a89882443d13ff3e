package project

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bach-end/Portfolio/internal/cli"
	"github.com/bach-end/Portfolio/internal/cli/styles"
	"github.com/bach-end/Portfolio/internal/models"
)

const progressBarWidth = 30

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a project's full case study",
		Long: `Show everything known about a project: status, technologies,
contributions, delivery timeline with progress, architecture notes and links.

Examples:
  portfolio project show newsletter-platform
  portfolio project show study-buddy --json`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
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

	p, err := cliInstance.App.ProjectService.GetProjectByID(ctx, args[0])
	if err != nil {
		return cli.ReportError(formatter, err)
	}
	progress, err := cliInstance.App.ProjectService.GetProgress(ctx, p.ID)
	if err != nil {
		return cli.ReportError(formatter, err)
	}

	if formatter.Quiet {
		return formatter.Success(p)
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":  true,
			"project":  p,
			"progress": progress,
		})
	}

	fmt.Println(styles.RenderCard(formatProjectCard(p, progress)))
	return nil
}

func formatProjectCard(p *models.Project, progress int) string {
	var b strings.Builder
	width := styles.CardWidth - 6

	b.WriteString(styles.TitleStyle.Render(p.Title))
	b.WriteString("  ")
	b.WriteString(styles.RenderStatusBadge(p.Status))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(styles.CategoryGlyph(p.Category) + " " + p.Category))
	b.WriteString("\n\n")

	if p.Description != "" {
		b.WriteString(styles.ValueStyle.Width(width).Render(p.Description))
		b.WriteString("\n")
	}

	if len(p.Technologies) > 0 {
		b.WriteString(styles.SectionStyle.Render("Technologies"))
		b.WriteString("\n")
		b.WriteString(styles.RenderTechChips(p.Technologies))
		b.WriteString("\n")
	}

	c := p.Contributions
	if c.Role != "" || c.TeamSize > 0 {
		b.WriteString(styles.SectionStyle.Render("Contributions"))
		b.WriteString("\n")
		if c.Role != "" {
			writeField(&b, "Role", c.Role)
		}
		if c.TeamSize > 0 {
			writeField(&b, "Team size", fmt.Sprintf("%d", c.TeamSize))
		}
		writeList(&b, "My work", c.MyContributions)
		writeList(&b, "Team work", c.TeamContributions)
	}

	b.WriteString(styles.SectionStyle.Render("Timeline"))
	b.WriteString("\n")
	b.WriteString(styles.ProgressBar(progress, progressBarWidth))
	b.WriteString("\n")
	if len(c.Timeline) == 0 {
		b.WriteString(styles.SubtitleStyle.Render("No phases recorded"))
		b.WriteString("\n")
	}
	for _, phase := range c.Timeline {
		mark := "○"
		if phase.Completed {
			mark = "✓"
		}
		line := fmt.Sprintf("%s %s", mark, phase.Phase)
		if phase.Duration != "" {
			line += styles.SubtitleStyle.Render("  " + phase.Duration)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	d := p.Details
	if len(d.Objectives)+len(d.Outcomes)+len(d.Challenges) > 0 {
		b.WriteString(styles.SectionStyle.Render("Details"))
		b.WriteString("\n")
		writeList(&b, "Objectives", d.Objectives)
		writeList(&b, "Outcomes", d.Outcomes)
		writeList(&b, "Challenges", d.Challenges)
	}

	a := p.About
	if a.Architecture != "" {
		b.WriteString(styles.SectionStyle.Render("Architecture"))
		b.WriteString("\n")
		b.WriteString(styles.ValueStyle.Width(width).Render(a.Architecture))
		b.WriteString("\n")
	}
	if a.CaseStudy != "" {
		b.WriteString(styles.SectionStyle.Render("Case study"))
		b.WriteString("\n")
		b.WriteString(styles.RenderMarkdown(a.CaseStudy, width))
		b.WriteString("\n")
	}
	writeList(&b, "Lessons learned", a.LessonsLearned)

	links := [][2]string{
		{"GitHub", a.GithubURL},
		{"Live demo", a.LiveDemo},
		{"App Store", a.AppStoreURL},
		{"Play Store", a.PlayStoreURL},
	}
	var header bool
	for _, link := range links {
		if link[1] == "" {
			continue
		}
		if !header {
			b.WriteString(styles.SectionStyle.Render("Links"))
			b.WriteString("\n")
			header = true
		}
		writeField(&b, link[0], link[1])
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(styles.LabelStyle.Render(label + ":"))
	b.WriteString(" ")
	b.WriteString(styles.ValueStyle.Render(value))
	b.WriteString("\n")
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(styles.LabelStyle.Render(label + ":"))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString("  • ")
		b.WriteString(styles.ValueStyle.Render(item))
		b.WriteString("\n")
	}
}
