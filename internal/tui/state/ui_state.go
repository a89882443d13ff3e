package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Browsing the project list
	SearchMode             // Vim-style search mode (/)
	DetailMode             // Showing one project
	HelpMode               // Displaying help screen
)

// String returns the label shown in the status bar
func (m Mode) String() string {
	switch m {
	case SearchMode:
		return "SEARCH"
	case DetailMode:
		return "DETAIL"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// UIState manages the user interface state.
// This includes navigation (category/project selection), list scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedCategory is the index of the active category tab
	selectedCategory int

	// selectedProject is the index of the cursor within the visible projects
	selectedProject int

	// scrollOffset is the index of the first visible row of the project list
	scrollOffset int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode { return s.mode }

// SetMode switches the interaction mode
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

// Width returns the terminal width
func (s *UIState) Width() int { return s.width }

// SetWidth records the terminal width
func (s *UIState) SetWidth(w int) { s.width = max(w, 0) }

// Height returns the terminal height
func (s *UIState) Height() int { return s.height }

// SetHeight records the terminal height
func (s *UIState) SetHeight(h int) { s.height = max(h, 0) }

// SelectedCategory returns the index of the active category tab
func (s *UIState) SelectedCategory() int { return s.selectedCategory }

// NextCategory moves to the next of n tabs, wrapping around.
// Changing tabs resets the cursor to the top of the list.
func (s *UIState) NextCategory(n int) {
	if n <= 0 {
		return
	}
	s.selectedCategory = (s.selectedCategory + 1) % n
	s.resetCursor()
}

// PrevCategory moves to the previous of n tabs, wrapping around.
func (s *UIState) PrevCategory(n int) {
	if n <= 0 {
		return
	}
	s.selectedCategory = (s.selectedCategory - 1 + n) % n
	s.resetCursor()
}

// SelectedProject returns the cursor index within the visible projects
func (s *UIState) SelectedProject() int { return s.selectedProject }

// MoveUp moves the cursor one row up.
// Returns false if the cursor was already at the top.
func (s *UIState) MoveUp() bool {
	if s.selectedProject == 0 {
		return false
	}
	s.selectedProject--
	if s.selectedProject < s.scrollOffset {
		s.scrollOffset = s.selectedProject
	}
	return true
}

// MoveDown moves the cursor one row down within n visible projects.
// Returns false if the cursor was already on the last row.
func (s *UIState) MoveDown(n int) bool {
	if s.selectedProject >= n-1 {
		return false
	}
	s.selectedProject++
	return true
}

// ClampSelection keeps the cursor inside a list of n projects.
// Called whenever the visible list is recomputed.
func (s *UIState) ClampSelection(n int) {
	if n <= 0 {
		s.resetCursor()
		return
	}
	if s.selectedProject > n-1 {
		s.selectedProject = n - 1
	}
	if s.scrollOffset > s.selectedProject {
		s.scrollOffset = s.selectedProject
	}
}

// ScrollOffset returns the first visible row for a list showing rows lines,
// adjusting it so the cursor stays on screen.
func (s *UIState) ScrollOffset(rows int) int {
	if rows <= 0 {
		return s.scrollOffset
	}
	if s.selectedProject >= s.scrollOffset+rows {
		s.scrollOffset = s.selectedProject - rows + 1
	}
	if s.selectedProject < s.scrollOffset {
		s.scrollOffset = s.selectedProject
	}
	return s.scrollOffset
}

func (s *UIState) resetCursor() {
	s.selectedProject = 0
	s.scrollOffset = 0
}
