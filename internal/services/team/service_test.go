package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bach-end/Portfolio/internal/catalog"
	"github.com/bach-end/Portfolio/internal/models"
)

type fakeRepo struct {
	members    []models.TeamMember
	milestones []models.Milestone
}

func (f *fakeRepo) AllMembers() []models.TeamMember  { return f.members }
func (f *fakeRepo) AllMilestones() []models.Milestone { return f.milestones }

func newTestService() (Service, *fakeRepo) {
	repo := &fakeRepo{
		members: []models.TeamMember{
			{ID: "ada", Name: "Ada", Role: "Backend"},
			{ID: "lin", Name: "Lin", Role: "Design"},
		},
		milestones: []models.Milestone{
			{Year: "May 2025", Title: "Founded"},
			{Year: "2026", Title: "Year only"},
			{Year: "", Title: "Undated"},
		},
	}
	return NewService(repo), repo
}

func TestGetAllMembers(t *testing.T) {
	svc, repo := newTestService()

	got, err := svc.GetAllMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	got[0].Name = "changed"
	assert.Equal(t, "Ada", repo.members[0].Name)
}

func TestGetAllMembers_Empty(t *testing.T) {
	svc := NewService(&fakeRepo{})

	got, err := svc.GetAllMembers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetMemberByID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	m, err := svc.GetMemberByID(ctx, "lin")
	require.NoError(t, err)
	assert.Equal(t, "Design", m.Role)

	_, err = svc.GetMemberByID(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyID)

	_, err = svc.GetMemberByID(ctx, "bob")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestGetTimeline(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.GetTimeline(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, catalog.DateLabel{Month: "May", Year: "2025"}, got[0].Date)
	assert.Equal(t, "Founded", got[0].Title)
	assert.Equal(t, catalog.DateLabel{Month: "", Year: "2026"}, got[1].Date)
	assert.Equal(t, catalog.DateLabel{}, got[2].Date)
}
