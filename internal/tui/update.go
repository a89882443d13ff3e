package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/bach-end/Portfolio/internal/tui/state"
)

// Update handles all incoming messages and returns an updated model and command
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetWidth(msg.Width)
		m.uiState.SetHeight(msg.Height)
		m.input.SetWidth(max(msg.Width-4, 10))
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.uiState.Mode() {
		case state.SearchMode:
			return m.handleSearchMode(msg)
		case state.DetailMode:
			return m.handleDetailMode(msg)
		case state.HelpMode:
			return m.handleHelpMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	return m, nil
}
