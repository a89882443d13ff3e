package catalog

import (
	"strings"

	"github.com/bach-end/Portfolio/internal/models"
)

// Filter returns the projects matching both the category selector and the
// free-text query, in catalog order.
//
// A category of models.CategoryAll disables category filtering; any other
// value keeps projects whose category contains it (case-insensitive).
// Only the exact value "all" counts as the sentinel; "ALL" is matched as a
// substring like any other category.
// A blank query disables text filtering; otherwise a project matches when the
// query, untrimmed, occurs in its title, its description or one of its technologies.
//
// The result is never nil and never aliases the input slice.
func Filter(projects []models.Project, category, query string) []models.Project {
	filterCategory := category != models.CategoryAll
	filterText := strings.TrimSpace(query) != ""
	category = strings.ToLower(category)
	query = strings.ToLower(query)

	result := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if filterCategory && !strings.Contains(strings.ToLower(p.Category), category) {
			continue
		}
		if filterText && !matchesQuery(p, query) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// matchesQuery expects query to be lowercased already
func matchesQuery(p models.Project, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, tech := range p.Technologies {
		if strings.Contains(strings.ToLower(tech), query) {
			return true
		}
	}
	return false
}
