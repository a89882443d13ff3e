package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/bach-end/Portfolio/internal/config"
)

// Tab borders - active tab has no bottom border to "open" into content
var (
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}
)

// tuiStyles holds the browser styles derived from the configured color scheme
type tuiStyles struct {
	tab       lipgloss.Style
	activeTab lipgloss.Style
	tabGap    lipgloss.Style

	row         lipgloss.Style
	selectedRow lipgloss.Style
	subtle      lipgloss.Style

	detail   lipgloss.Style
	title    lipgloss.Style
	section  lipgloss.Style
	helpBox  lipgloss.Style
	search   lipgloss.Style
	status   lipgloss.Style
	modeChip lipgloss.Style
	err      lipgloss.Style
}

func newStyles(colors config.ColorScheme) tuiStyles {
	tab := lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(colors.Border)).
		Foreground(lipgloss.Color(colors.Subtle)).
		Padding(0, 1)

	return tuiStyles{
		tab: tab,
		activeTab: tab.Border(activeTabBorder, true).
			BorderForeground(lipgloss.Color(colors.SelectedBorder)).
			Foreground(lipgloss.Color(colors.Title)).
			Bold(true),
		tabGap: tab.BorderTop(false).BorderLeft(false).BorderRight(false),

		row: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Normal)).
			PaddingLeft(2),
		selectedRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Title)).
			Background(lipgloss.Color(colors.SelectedBg)).
			Bold(true).
			PaddingLeft(2),
		subtle: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Subtle)),

		detail: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors.SelectedBorder)).
			Padding(1, 2),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Accent)).
			MarginTop(1),
		helpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors.Info)).
			Padding(1, 3),
		search: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Warning)),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),
		modeChip: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.SelectedBg)).
			Background(lipgloss.Color(colors.Accent)).
			Padding(0, 1),
		err: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Error)),
	}
}
