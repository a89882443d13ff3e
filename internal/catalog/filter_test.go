package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bach-end/Portfolio/internal/models"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{
			ID:           "ecommerce",
			Title:        "E-Commerce Platform",
			Description:  "Full-stack shop with payments and inventory",
			Category:     "Web Application",
			Status:       "Completed",
			Technologies: []string{"React", "Node.js", "MongoDB"},
			Featured:     true,
		},
		{
			ID:           "fitness",
			Title:        "Fitness Tracker",
			Description:  "Cross-platform workout logging",
			Category:     "Mobile Application",
			Status:       "In Progress",
			Technologies: []string{"React Native", "Firebase"},
		},
		{
			ID:           "dashboard",
			Title:        "Sales Dashboard",
			Description:  "Interactive charts for regional sales",
			Category:     "Data Visualization",
			Status:       "completed",
			Technologies: []string{"D3.js", "Python"},
			Featured:     true,
		},
		{
			ID:           "portal",
			Title:        "Student Portal",
			Description:  "Course registration web app",
			Category:     "Web Application",
			Status:       "Planned",
			Technologies: []string{"Vue.js", "Django"},
		},
	}
}

func ids(projects []models.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestFilter_AllAndEmptyQueryReturnsCatalog(t *testing.T) {
	projects := sampleProjects()

	got := Filter(projects, models.CategoryAll, "")

	if diff := cmp.Diff(projects, got); diff != "" {
		t.Errorf("Filter(all, \"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_EmptyCatalog(t *testing.T) {
	got := Filter(nil, models.CategoryAll, "")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		category string
		query    string
		want     []string
	}{
		{"category exact", "Web Application", "", []string{"ecommerce", "portal"}},
		{"category case-insensitive", "web application", "", []string{"ecommerce", "portal"}},
		{"category substring", "mobile", "", []string{"fitness"}},
		{"category shared substring", "application", "", []string{"ecommerce", "fitness", "portal"}},
		{"query matches title", "all", "dashboard", []string{"dashboard"}},
		{"query matches description", "all", "inventory", []string{"ecommerce"}},
		{"query matches technology uppercase", "all", "REACT", []string{"ecommerce", "fitness"}},
		{"query matches technology substring", "all", ".js", []string{"ecommerce", "dashboard", "portal"}},
		{"whitespace query ignored", "all", "   ", []string{"ecommerce", "fitness", "dashboard", "portal"}},
		{"query is not trimmed", "all", "python ", []string{}},
		{"trailing space never matches exact technology", "all", "react ", []string{}},
		{"inner spaces kept", "all", "react native", []string{"fitness"}},
		{"category and query conjunctive", "web", "react", []string{"ecommerce"}},
		{"category and query no overlap", "mobile", "django", []string{}},
		{"unknown category", "Game", "", []string{}},
		{"unknown query", "all", "blockchain", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleProjects(), tt.category, tt.query)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

// TestFilter_SentinelIsCaseSensitive ensures only the exact "all" disables
// category filtering; other casings are ordinary substrings.
func TestFilter_SentinelIsCaseSensitive(t *testing.T) {
	projects := []models.Project{
		{ID: "a", Category: "Small Business"},
		{ID: "b", Category: "Mobile Application"},
	}

	tests := []struct {
		category string
		want     []string
	}{
		{"all", []string{"a", "b"}},
		{"ALL", []string{"a"}},
		{"All", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(projects, tt.category, "")))
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	projects := sampleProjects()
	before := sampleProjects()

	got := Filter(projects, "web", "react")
	require.Len(t, got, 1)
	got[0].Title = "changed"

	if diff := cmp.Diff(before, projects); diff != "" {
		t.Errorf("input catalog changed (-before +after):\n%s", diff)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	categories := []string{"all", "web", "Mobile Application", "visual", "none"}
	queries := []string{"", "react", "JS", "sales", "zzz"}

	for _, c := range categories {
		for _, q := range queries {
			once := Filter(sampleProjects(), c, q)
			twice := Filter(once, c, q)
			assert.Equal(t, ids(once), ids(twice), "category=%q query=%q", c, q)
		}
	}
}

func TestFilter_ResultIsSubsequence(t *testing.T) {
	catalog := ids(sampleProjects())
	categories := []string{"all", "web", "data", "application"}
	queries := []string{"", "a", "react", "python"}

	for _, c := range categories {
		for _, q := range queries {
			got := ids(Filter(sampleProjects(), c, q))
			assert.True(t, isSubsequence(got, catalog), "category=%q query=%q got=%v", c, q, got)
		}
	}
}

func isSubsequence(sub, full []string) bool {
	i := 0
	for _, id := range full {
		if i < len(sub) && sub[i] == id {
			i++
		}
	}
	return i == len(sub)
}
