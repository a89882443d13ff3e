package catalog

import "github.com/bach-end/Portfolio/internal/models"

// Progress returns the share of completed phases as a percentage in [0,100],
// rounded half-up. An empty timeline yields 0.
func Progress(timeline []models.Phase) int {
	total := len(timeline)
	if total == 0 {
		return 0
	}

	completed := 0
	for _, phase := range timeline {
		if phase.Completed {
			completed++
		}
	}

	// completed/total*100 rounded half-up, in integer arithmetic
	return (completed*200 + total) / (2 * total)
}
