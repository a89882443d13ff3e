package styles

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/bach-end/Portfolio/internal/catalog"
	"github.com/bach-end/Portfolio/internal/config"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Role:", "Team size:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Timeline", "Technologies"
	ErrorStyle    lipgloss.Style

	// Badge styles keyed by catalog variant
	badgeStyles map[string]lipgloss.Style

	// Progress bar colors
	barFilled lipgloss.Style
	barEmpty  lipgloss.Style

	chipStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))

	badge := func(hex string) lipgloss.Style {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(hex)).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(lipgloss.Color(hex)).
			Padding(0, 1)
	}
	badgeStyles = map[string]lipgloss.Style{
		catalog.VariantSuccess:   badge(colors.Success),
		catalog.VariantWarning:   badge(colors.Warning),
		catalog.VariantInfo:      badge(colors.Info),
		catalog.VariantSecondary: badge(colors.Secondary),
	}

	barFilled = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Accent))
	barEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Subtle))

	chipStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal)).
		Background(lipgloss.Color(colors.SelectedBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderStatusBadge renders a project status in its variant color
func RenderStatusBadge(status string) string {
	style, ok := badgeStyles[catalog.StatusVariant(status)]
	if !ok {
		return "[" + status + "]"
	}
	return style.Render(status)
}

// RenderTechChips renders technologies as a row of chips
func RenderTechChips(techs []string) string {
	chips := make([]string, len(techs))
	for i, tech := range techs {
		chips[i] = chipStyle.Render(tech)
	}
	return strings.Join(chips, " ")
}

// CategoryGlyph maps catalog.CategoryIcon identifiers to terminal glyphs
func CategoryGlyph(category string) string {
	switch catalog.CategoryIcon(category) {
	case catalog.IconGlobe:
		return "🌐"
	case catalog.IconMobile:
		return "📱"
	case catalog.IconChart:
		return "📊"
	default:
		return "💻"
	}
}

// ProgressBar draws a bar of width cells for pct in [0,100]
func ProgressBar(pct, width int) string {
	if width <= 0 {
		return ""
	}
	pct = max(0, min(100, pct))
	filled := (pct*width + 50) / 100
	return barFilled.Render(strings.Repeat("█", filled)) +
		barEmpty.Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %3d%%", pct)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders md for the terminal, falling back to the raw text
func RenderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	renderer, err := getRenderer(width)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
