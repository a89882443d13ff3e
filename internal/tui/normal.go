package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/bach-end/Portfolio/internal/tui/state"
)

// handleNormalMode handles keyboard input while browsing the project list.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings
	key := msg.String()

	switch key {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.uiState.SetMode(state.HelpMode)
		return m, nil
	case km.Search:
		return m.handleEnterSearch()
	case km.NextCategory:
		m.uiState.NextCategory(len(m.categories))
		m.refresh()
		return m, nil
	case km.PrevCategory:
		m.uiState.PrevCategory(len(m.categories))
		m.refresh()
		return m, nil
	case km.NextProject, "down":
		m.uiState.MoveDown(len(m.visible))
		return m, nil
	case km.PrevProject, "up":
		m.uiState.MoveUp()
		return m, nil
	case km.OpenProject:
		if _, ok := m.selectedProject(); ok {
			m.uiState.SetMode(state.DetailMode)
		}
		return m, nil
	case km.Back:
		// esc in the list drops a kept search filter
		if m.search.Query != "" {
			m.search.Clear()
			m.search.Deactivate()
			m.input.Reset()
			m.refresh()
		}
		return m, nil
	}

	return m, nil
}

// handleDetailMode handles input while a project is open.
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings
	switch msg.String() {
	case km.Quit:
		return m, tea.Quit
	case km.Back, "backspace", "h", "left":
		m.uiState.SetMode(state.NormalMode)
	case km.ShowHelp:
		m.uiState.SetMode(state.HelpMode)
	}
	return m, nil
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.config.KeyMappings.ShowHelp, m.config.KeyMappings.Quit, "esc", "enter", "space":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}
