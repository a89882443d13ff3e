package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bach-end/Portfolio/internal/cli/styles"
	"github.com/bach-end/Portfolio/internal/models"
	"github.com/bach-end/Portfolio/internal/tui/state"
)

// chrome is the number of lines used by tabs, search line and status bar
const chrome = 6

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true // Use alternate screen buffer
	view.SetContent(m.content())
	return view
}

// content renders the screen for the current mode
func (m Model) content() string {
	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		return "Loading..."
	}

	var body string
	switch m.uiState.Mode() {
	case state.DetailMode:
		body = m.viewDetail()
	case state.HelpMode:
		body = lipgloss.Place(
			m.uiState.Width(), max(m.uiState.Height()-1, 1),
			lipgloss.Center, lipgloss.Center,
			m.viewHelp(),
		)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.viewTabs(),
			m.viewSearchLine(),
			m.viewList(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewStatusBar())
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(m.categories))
	for i, c := range m.categories {
		label := "All"
		if c != models.CategoryAll {
			label = styles.CategoryGlyph(c) + " " + c
		}
		if i == m.uiState.SelectedCategory() {
			tabs = append(tabs, m.styles.activeTab.Render(label))
		} else {
			tabs = append(tabs, m.styles.tab.Render(label))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if gap := m.uiState.Width() - lipgloss.Width(row); gap > 0 {
		row = lipgloss.JoinHorizontal(lipgloss.Bottom, row, m.styles.tabGap.Render(strings.Repeat(" ", gap)))
	}
	return row
}

func (m Model) viewSearchLine() string {
	if m.uiState.Mode() == state.SearchMode {
		return m.input.View()
	}
	if m.search.Query != "" {
		return m.styles.search.Render("/" + m.search.Query)
	}
	return m.styles.subtle.Render("press / to search")
}

func (m Model) viewList() string {
	if len(m.visible) == 0 {
		return m.styles.subtle.Render("\n  No projects found. Try a different search term or category.")
	}

	rows := max(m.uiState.Height()-chrome, 1)
	offset := m.uiState.ScrollOffset(rows)
	end := min(offset+rows, len(m.visible))

	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		p := m.visible[i]
		line := fmt.Sprintf("%s %-32s %s  %s",
			styles.CategoryGlyph(p.Category),
			p.Title,
			styles.RenderStatusBadge(p.Status),
			m.styles.subtle.Render(strings.Join(p.Technologies, ", ")),
		)
		if i == m.uiState.SelectedProject() {
			lines = append(lines, m.styles.selectedRow.Render("> "+line))
		} else {
			lines = append(lines, m.styles.row.Render("  "+line))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewDetail() string {
	p, ok := m.selectedProject()
	if !ok {
		return m.styles.subtle.Render("No project selected")
	}

	width := max(min(m.uiState.Width()-2, styles.CardWidth), 20)
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s  %s\n", styles.CategoryGlyph(p.Category), m.styles.title.Render(p.Title), styles.RenderStatusBadge(p.Status))
	b.WriteString(m.styles.subtle.Render(p.Category))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width - 6).Render(p.Description))
	b.WriteString("\n")

	b.WriteString(m.styles.section.Render("Progress"))
	b.WriteString("\n")
	progress, err := m.projects.GetProgress(m.ctx, p.ID)
	if err != nil {
		slog.Error("failed to compute progress", "project", p.ID, "error", err)
	}
	b.WriteString(styles.ProgressBar(progress, 30))
	b.WriteString("\n")

	b.WriteString(m.styles.section.Render("Phases"))
	b.WriteString("\n")
	if len(p.Contributions.Timeline) == 0 {
		b.WriteString(m.styles.subtle.Render("No phases recorded"))
		b.WriteString("\n")
	}
	for _, ph := range p.Contributions.Timeline {
		mark := "○"
		if ph.Completed {
			mark = "✓"
		}
		fmt.Fprintf(&b, "  %s %s %s\n", mark, ph.Phase, m.styles.subtle.Render("("+ph.Duration+")"))
	}

	b.WriteString(m.styles.section.Render("Technologies"))
	b.WriteString("\n")
	b.WriteString(styles.RenderTechChips(p.Technologies))

	return m.styles.detail.Width(width).Render(b.String())
}

func (m Model) viewHelp() string {
	km := m.config.KeyMappings
	rows := [][2]string{
		{km.NextProject + " / ↓", "next project"},
		{km.PrevProject + " / ↑", "previous project"},
		{km.NextCategory, "next category"},
		{km.PrevCategory, "previous category"},
		{km.OpenProject, "open project"},
		{km.Back, "back / clear search"},
		{km.Search, "search"},
		{km.ShowHelp, "toggle help"},
		{km.Quit + " / ctrl+c", "quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("Keyboard shortcuts"))
	b.WriteString("\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-16s %s\n", r[0], m.styles.subtle.Render(r[1]))
	}
	return m.styles.helpBox.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewStatusBar() string {
	left := m.styles.modeChip.Render(m.uiState.Mode().String())
	info := fmt.Sprintf(" Showing %d of %d", len(m.visible), m.total)
	if m.err != nil {
		info = " " + m.styles.err.Render(m.err.Error())
	}
	return left + m.styles.status.Render(info+"  ·  ? help")
}
