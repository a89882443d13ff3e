package testutil

import (
	"github.com/bach-end/Portfolio/internal/data"
	"github.com/bach-end/Portfolio/internal/models"
)

// FixtureCatalog returns a small, stable catalog for command and TUI tests.
//
//	alpha  Web Application     Completed    featured  React, Go         2/2 phases
//	beta   Mobile Application  In Progress  featured  Flutter, Firebase 1/3 phases
//	gamma  Data Visualization  Planned                D3.js, Python     no timeline
//	delta  Web Application     In Progress            Vue.js, Python    1/2 phases
func FixtureCatalog() *data.Catalog {
	return &data.Catalog{
		Projects: []models.Project{
			{
				ID:               "alpha",
				Title:            "Alpha Shop",
				ShortDescription: "Storefront",
				Description:      "An online storefront with payments",
				Category:         models.CategoryWebApplication,
				Status:           models.StatusCompleted,
				Technologies:     []string{"React", "Go"},
				Featured:         true,
				Details: models.Details{
					Objectives: []string{"Sell things"},
					Outcomes:   []string{"Things were sold"},
				},
				Contributions: models.Contributions{
					Role:     "Lead Developer",
					TeamSize: 3,
					Timeline: []models.Phase{
						{Phase: "Design", Duration: "2 weeks", Completed: true},
						{Phase: "Build", Duration: "6 weeks", Completed: true},
					},
					MyContributions: []string{"Checkout flow"},
				},
				About: models.About{
					Architecture: "React client, Go API",
					CaseStudy:    "We built a **shop**.",
					GithubURL:    "https://github.com/example/alpha",
				},
			},
			{
				ID:               "beta",
				Title:            "Beta Runner",
				ShortDescription: "Workout tracker",
				Description:      "Cross-platform workout logging",
				Category:         models.CategoryMobileApplication,
				Status:           models.StatusInProgress,
				Technologies:     []string{"Flutter", "Firebase"},
				Featured:         true,
				Contributions: models.Contributions{
					Role:     "Mobile Developer",
					TeamSize: 2,
					Timeline: []models.Phase{
						{Phase: "Design", Duration: "1 week", Completed: true},
						{Phase: "Build", Duration: "4 weeks", Completed: false},
						{Phase: "Launch", Duration: "1 week", Completed: false},
					},
				},
			},
			{
				ID:               "gamma",
				Title:            "Gamma Charts",
				ShortDescription: "Sales charts",
				Description:      "Interactive charts for regional sales",
				Category:         models.CategoryDataVisualization,
				Status:           models.StatusPlanned,
				Technologies:     []string{"D3.js", "Python"},
			},
			{
				ID:               "delta",
				Title:            "Delta Portal",
				ShortDescription: "Student portal",
				Description:      "Course registration",
				Category:         models.CategoryWebApplication,
				Status:           models.StatusInProgress,
				Technologies:     []string{"Vue.js", "Python"},
				Contributions: models.Contributions{
					Timeline: []models.Phase{
						{Phase: "Design", Completed: true},
						{Phase: "Build", Completed: false},
					},
				},
			},
		},
		Team: []models.TeamMember{
			{
				ID:         "ada",
				Name:       "Ada Byron",
				Role:       "Backend Developer",
				Bio:        "Writes the APIs",
				Skills:     []string{"Go", "PostgreSQL"},
				Social:     map[string]string{"github": "https://github.com/ada"},
				Location:   "London",
				Experience: "4 years",
			},
			{
				ID:       "lin",
				Name:     "Lin Wei",
				Role:     "Designer",
				Skills:   []string{"Figma"},
				Location: "Taipei",
			},
		},
		Milestones: []models.Milestone{
			{Year: "May 2025", Title: "Founded", Description: "The team formed"},
			{Year: "Aug 2025", Title: "First Launch", Description: "Shipped alpha"},
		},
	}
}
