package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/bach-end/Portfolio/internal/config"
	"github.com/bach-end/Portfolio/internal/models"
	"github.com/bach-end/Portfolio/internal/services/project"
	"github.com/bach-end/Portfolio/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx      context.Context
	projects project.Service
	config   *config.Config
	styles   tuiStyles

	// categories are the tab values, models.CategoryAll first
	categories []string

	// visible is the filtered list for the active tab and query
	visible []models.Project
	total   int

	uiState *state.UIState
	search  *state.SearchState
	input   textinput.Model

	// err holds the last failed refresh, shown in the status bar
	err error
}

// New creates the browser model and computes the initial project list
func New(ctx context.Context, projects project.Service, cfg *config.Config) (Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	categories, err := projects.GetCategories(ctx)
	if err != nil {
		return Model{}, err
	}

	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "title, description or technology"
	input.CharLimit = state.MaxQueryLength

	m := Model{
		ctx:        ctx,
		projects:   projects,
		config:     cfg,
		styles:     newStyles(cfg.ColorScheme),
		categories: categories,
		uiState:    state.NewUIState(),
		search:     state.NewSearchState(),
		input:      input,
	}
	m.refresh()
	return m, m.err
}

// Init is the first function called by Bubble Tea
func (m Model) Init() tea.Cmd {
	return nil
}

// Category returns the value of the active category tab
func (m Model) Category() string {
	if len(m.categories) == 0 {
		return models.CategoryAll
	}
	return m.categories[m.uiState.SelectedCategory()]
}

// Visible returns the projects currently listed
func (m Model) Visible() []models.Project {
	return m.visible
}

// Mode returns the current interaction mode
func (m Model) Mode() state.Mode {
	return m.uiState.Mode()
}

// Query returns the current search text
func (m Model) Query() string {
	return m.search.Query
}

// selectedProject returns the project under the cursor
func (m Model) selectedProject() (models.Project, bool) {
	i := m.uiState.SelectedProject()
	if i < 0 || i >= len(m.visible) {
		return models.Project{}, false
	}
	return m.visible[i], true
}

// refresh recomputes the visible list from the active tab and query
func (m *Model) refresh() {
	result, err := m.projects.ListProjects(m.ctx, project.ListProjectsRequest{
		Category: m.Category(),
		Query:    m.search.Query,
	})
	if err != nil {
		slog.Error("failed to list projects", "category", m.Category(), "error", err)
		m.err = err
		return
	}

	m.err = nil
	m.visible = result.Projects
	m.total = result.Total
	m.uiState.ClampSelection(len(m.visible))
}
