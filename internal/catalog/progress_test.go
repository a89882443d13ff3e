package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bach-end/Portfolio/internal/models"
)

func phases(done ...bool) []models.Phase {
	out := make([]models.Phase, len(done))
	for i, d := range done {
		out[i] = models.Phase{Phase: "phase", Completed: d}
	}
	return out
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		timeline []models.Phase
		want     int
	}{
		{"empty timeline", nil, 0},
		{"empty slice", []models.Phase{}, 0},
		{"two of three rounds up", phases(true, false, true), 67},
		{"one of three rounds down", phases(true, false, false), 33},
		{"none completed", phases(false, false), 0},
		{"single completed", phases(true), 100},
		{"all completed", phases(true, true, true, true), 100},
		{"half", phases(true, false), 50},
		{"exact half rounds up", phases(true, false, false, false, false, false, false, false), 13},
		{"order does not matter", phases(false, true, true), 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Progress(tt.timeline))
		})
	}
}

func TestProgress_Bounds(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for completed := 0; completed <= total; completed++ {
			done := make([]bool, total)
			for i := 0; i < completed; i++ {
				done[i] = true
			}
			got := Progress(phases(done...))
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		}
	}
}
