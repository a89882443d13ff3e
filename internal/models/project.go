package models

// Project is one entry of the portfolio catalog.
// Projects are loaded once from static data and never mutated afterwards.
type Project struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	ShortDescription string        `json:"shortDescription"`
	Description      string        `json:"description"`
	Category         string        `json:"category"`
	Status           string        `json:"status"`
	Technologies     []string      `json:"technologies"`
	Featured         bool          `json:"featured"`
	Thumbnail        string        `json:"thumbnail,omitempty"`
	Image            string        `json:"image,omitempty"`
	Details          Details       `json:"details"`
	Contributions    Contributions `json:"contributions"`
	About            About         `json:"about"`
}

// GetID returns the project identifier (used by quiet output mode)
func (p Project) GetID() string {
	return p.ID
}

// Details holds the narrative parts of a project page
type Details struct {
	Objectives  []string `json:"objectives"`
	Outcomes    []string `json:"outcomes"`
	Screenshots []string `json:"screenshots"`
	Challenges  []string `json:"challenges"`
}

// Contributions describes who did what and when
type Contributions struct {
	Role              string   `json:"role"`
	TeamSize          int      `json:"teamSize"`
	Timeline          []Phase  `json:"timeline"`
	MyContributions   []string `json:"myContributions"`
	TeamContributions []string `json:"teamContributions"`
}

// Phase is a single stage of a project's delivery.
// Timeline order is significant for display only.
type Phase struct {
	Phase     string `json:"phase"`
	Duration  string `json:"duration"`
	Completed bool   `json:"completed"`
}

// About holds the architecture notes and external links of a project
type About struct {
	Architecture   string   `json:"architecture"`
	CaseStudy      string   `json:"caseStudy"`
	LessonsLearned []string `json:"lessonsLearned"`
	GithubURL      string   `json:"githubUrl,omitempty"`
	LiveDemo       string   `json:"liveDemo,omitempty"`
	AppStoreURL    string   `json:"appStoreUrl,omitempty"`
	PlayStoreURL   string   `json:"playStoreUrl,omitempty"`
}
