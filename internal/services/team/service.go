package team

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/bach-end/Portfolio/internal/catalog"
	"github.com/bach-end/Portfolio/internal/models"
)

// Service defines the team and timeline read operations
type Service interface {
	GetAllMembers(ctx context.Context) ([]models.TeamMember, error)
	GetMemberByID(ctx context.Context, id string) (*models.TeamMember, error)
	GetTimeline(ctx context.Context) ([]TimelineEntry, error)
}

// TimelineEntry is a milestone with its date label split for column display
type TimelineEntry struct {
	models.Milestone
	Date catalog.DateLabel `json:"date"`
}

type repository interface {
	AllMembers() []models.TeamMember
	AllMilestones() []models.Milestone
}

type service struct {
	repo repository
}

// NewService creates a new team service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetAllMembers returns a copy of the team in catalog order
func (s *service) GetAllMembers(ctx context.Context) ([]models.TeamMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	members := s.repo.AllMembers()
	if members == nil {
		return []models.TeamMember{}, nil
	}
	return slices.Clone(members), nil
}

// GetMemberByID retrieves a specific team member
func (s *service) GetMemberByID(ctx context.Context, id string) (*models.TeamMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyID
	}
	for _, m := range s.repo.AllMembers() {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, id)
}

// GetTimeline returns the milestones with their month and year separated
func (s *service) GetTimeline(ctx context.Context) ([]TimelineEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	milestones := s.repo.AllMilestones()
	entries := make([]TimelineEntry, 0, len(milestones))
	for _, m := range milestones {
		entries = append(entries, TimelineEntry{
			Milestone: m,
			Date:      catalog.SplitDateLabel(m.Year),
		})
	}
	return entries, nil
}
