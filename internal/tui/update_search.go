package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/bach-end/Portfolio/internal/tui/state"
)

// handleEnterSearch enters search mode, editing the current query.
func (m Model) handleEnterSearch() (tea.Model, tea.Cmd) {
	m.input.SetValue(m.search.Query)
	m.input.CursorEnd()
	m.uiState.SetMode(state.SearchMode)
	return m, m.input.Focus()
}

// handleSearchMode handles keyboard input in search mode.
// Every edit re-filters the list immediately.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.handleSearchConfirm()
	case "esc":
		return m.handleSearchCancel()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.search.SetQuery(m.input.Value()) {
		m.refresh()
	}
	return m, cmd
}

// handleSearchConfirm keeps the filter and returns to normal mode.
func (m Model) handleSearchConfirm() (tea.Model, tea.Cmd) {
	if m.search.Query != "" {
		m.search.Activate()
	} else {
		m.search.Deactivate()
	}
	m.input.Blur()
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

// handleSearchCancel clears the search and returns to normal mode.
func (m Model) handleSearchCancel() (tea.Model, tea.Cmd) {
	m.search.Clear()
	m.search.Deactivate()
	m.input.Reset()
	m.input.Blur()
	m.uiState.SetMode(state.NormalMode)
	m.refresh()
	return m, nil
}
