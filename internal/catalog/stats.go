package catalog

import (
	"strings"

	"github.com/bach-end/Portfolio/internal/models"
)

// Stats summarises the catalog for the projects overview
type Stats struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	InProgress   int `json:"inProgress"`
	Planned      int `json:"planned"`
	Technologies int `json:"technologies"` // distinct technology names
}

// ComputeStats counts projects per status and distinct technologies.
// Status comparison is case-insensitive; technology names are compared exactly.
func ComputeStats(projects []models.Project) Stats {
	stats := Stats{Total: len(projects)}
	seen := make(map[string]struct{})

	for _, p := range projects {
		switch {
		case strings.EqualFold(p.Status, models.StatusCompleted):
			stats.Completed++
		case strings.EqualFold(p.Status, models.StatusInProgress):
			stats.InProgress++
		case strings.EqualFold(p.Status, models.StatusPlanned):
			stats.Planned++
		}
		for _, tech := range p.Technologies {
			seen[tech] = struct{}{}
		}
	}

	stats.Technologies = len(seen)
	return stats
}

// Featured returns the projects flagged for the landing page, in catalog order
func Featured(projects []models.Project) []models.Project {
	result := make([]models.Project, 0)
	for _, p := range projects {
		if p.Featured {
			result = append(result, p)
		}
	}
	return result
}

// FindByID looks a project up by its exact ID
func FindByID(projects []models.Project, id string) (models.Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// Categories returns the category selector values: models.CategoryAll first,
// then every distinct category in order of first appearance.
func Categories(projects []models.Project) []string {
	result := []string{models.CategoryAll}
	seen := make(map[string]struct{})
	for _, p := range projects {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		result = append(result, p.Category)
	}
	return result
}
