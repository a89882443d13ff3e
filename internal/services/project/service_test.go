package project

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bach-end/Portfolio/internal/catalog"
	"github.com/bach-end/Portfolio/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type fakeRepo struct {
	projects []models.Project
}

func (f *fakeRepo) AllProjects() []models.Project {
	return f.projects
}

func newTestService() (Service, *fakeRepo) {
	repo := &fakeRepo{projects: []models.Project{
		{
			ID:           "shop",
			Title:        "Shop",
			Description:  "Online store",
			Category:     "Web Application",
			Status:       "Completed",
			Technologies: []string{"React", "Go"},
			Featured:     true,
			Contributions: models.Contributions{Timeline: []models.Phase{
				{Phase: "Design", Completed: true},
				{Phase: "Build", Completed: true},
				{Phase: "Launch", Completed: false},
			}},
		},
		{
			ID:           "runner",
			Title:        "Runner",
			Description:  "Workout tracker",
			Category:     "Mobile Application",
			Status:       "In Progress",
			Technologies: []string{"Flutter"},
		},
		{
			ID:           "charts",
			Title:        "Charts",
			Description:  "Sales dashboard",
			Category:     "Data Visualization",
			Status:       "Planned",
			Technologies: []string{"D3.js", "Go"},
			Featured:     true,
		},
	}}
	return NewService(repo), repo
}

// ============================================================================
// TESTS
// ============================================================================

func TestGetProjectByID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{"found", "runner", nil},
		{"surrounding whitespace", "  runner ", nil},
		{"empty", "", ErrEmptyID},
		{"blank", "   ", ErrEmptyID},
		{"unknown", "missing", ErrProjectNotFound},
		{"case sensitive", "RUNNER", ErrProjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := svc.GetProjectByID(ctx, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "runner", p.ID)
		})
	}
}

func TestListProjects(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name    string
		req     ListProjectsRequest
		wantIDs []string
	}{
		{"no filters", ListProjectsRequest{}, []string{"shop", "runner", "charts"}},
		{"explicit all", ListProjectsRequest{Category: "all"}, []string{"shop", "runner", "charts"}},
		{"category substring", ListProjectsRequest{Category: "application"}, []string{"shop", "runner"}},
		{"technology query", ListProjectsRequest{Query: "go"}, []string{"shop", "charts"}},
		{"combined", ListProjectsRequest{Category: "data", Query: "go"}, []string{"charts"}},
		{"no match", ListProjectsRequest{Query: "cobol"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.ListProjects(context.Background(), tt.req)
			require.NoError(t, err)

			got := make([]string, 0, len(res.Projects))
			for _, p := range res.Projects {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
			assert.Equal(t, len(tt.wantIDs), res.Shown)
			assert.Equal(t, 3, res.Total)
		})
	}
}

func TestGetFeaturedProjects(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.GetFeaturedProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "shop", got[0].ID)
	assert.Equal(t, "charts", got[1].ID)
}

func TestGetStats(t *testing.T) {
	svc, _ := newTestService()

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.Stats{Total: 3, Completed: 1, InProgress: 1, Planned: 1, Technologies: 4}, stats)
}

func TestGetCategories(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"all", "Web Application", "Mobile Application", "Data Visualization"}, got)
}

func TestGetProgress(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	pct, err := svc.GetProgress(ctx, "shop")
	require.NoError(t, err)
	assert.Equal(t, 67, pct)

	pct, err = svc.GetProgress(ctx, "runner")
	require.NoError(t, err)
	assert.Equal(t, 0, pct, "empty timeline reports zero")

	_, err = svc.GetProgress(ctx, "nope")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestCancelledContext(t *testing.T) {
	svc, _ := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ListProjects(ctx, ListProjectsRequest{})
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = svc.GetProjectByID(ctx, "shop")
	assert.True(t, errors.Is(err, context.Canceled))
}
