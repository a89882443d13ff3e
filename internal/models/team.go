package models

// TeamMember is a person shown on the about page
type TeamMember struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Role       string            `json:"role"`
	Bio        string            `json:"bio"`
	Image      string            `json:"image,omitempty"`
	Skills     []string          `json:"skills"`
	Social     map[string]string `json:"social,omitempty"` // platform -> URL, every platform optional
	Location   string            `json:"location"`
	Experience string            `json:"experience"`
}

// GetID returns the member identifier (used by quiet output mode)
func (m TeamMember) GetID() string {
	return m.ID
}

// Milestone is an entry of the team timeline.
// Year holds the combined "Month Year" label, e.g. "Aug 2025".
type Milestone struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}
