package state

import "unicode/utf8"

// MaxQueryLength caps the search query, counted in runes
const MaxQueryLength = 100

// SearchState manages the vim-style search functionality state.
// This includes the search query text and whether the filter is currently active.
type SearchState struct {
	// Query is the current search text entered by the user
	Query string

	// IsActive indicates whether the search filter is applied
	// When true, the project list shows only matching projects after leaving search mode
	IsActive bool
}

// NewSearchState creates a new SearchState with default values.
func NewSearchState() *SearchState {
	return &SearchState{
		Query:    "",
		IsActive: false,
	}
}

// SetQuery replaces the query with the text typed so far.
// Returns true if the query changed. Text past MaxQueryLength is cut off.
func (s *SearchState) SetQuery(q string) bool {
	if utf8.RuneCountInString(q) > MaxQueryLength {
		q = string([]rune(q)[:MaxQueryLength])
	}
	if q == s.Query {
		return false
	}
	s.Query = q
	return true
}

// Clear resets the search query to empty string.
func (s *SearchState) Clear() {
	s.Query = ""
}

// Activate sets the filter as active.
// This is called when the user presses Enter in search mode.
func (s *SearchState) Activate() {
	s.IsActive = true
}

// Deactivate clears the filter.
// This is called when the user presses ESC in search mode.
func (s *SearchState) Deactivate() {
	s.IsActive = false
}
