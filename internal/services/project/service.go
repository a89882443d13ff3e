package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/bach-end/Portfolio/internal/catalog"
	"github.com/bach-end/Portfolio/internal/models"
)

// Service defines all project-related read operations
type Service interface {
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	ListProjects(ctx context.Context, req ListProjectsRequest) (*ListProjectsResult, error)
	GetFeaturedProjects(ctx context.Context) ([]models.Project, error)
	GetStats(ctx context.Context) (catalog.Stats, error)
	GetCategories(ctx context.Context) ([]string, error)
	GetProgress(ctx context.Context, id string) (int, error)
}

// ListProjectsRequest carries the category tab and search text of a listing
type ListProjectsRequest struct {
	Category string
	Query    string
}

// ListProjectsResult is a filtered view over the catalog
type ListProjectsResult struct {
	Projects []models.Project `json:"projects"`
	Shown    int              `json:"shown"`
	Total    int              `json:"total"`
}

// repository defines the data access methods needed by the project service
// This interface is private to the service layer
type repository interface {
	AllProjects() []models.Project
}

// service implements Service interface with private repository
type service struct {
	repo repository
}

// NewService creates a new project service over a read-only catalog
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetProjectByID retrieves a specific project
func (s *service) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyID
	}
	p, ok := catalog.FindByID(s.repo.AllProjects(), id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return &p, nil
}

// ListProjects applies the category and search filters.
// An empty category means every category.
func (s *service) ListProjects(ctx context.Context, req ListProjectsRequest) (*ListProjectsResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	category := req.Category
	if strings.TrimSpace(category) == "" {
		category = models.CategoryAll
	}
	all := s.repo.AllProjects()
	filtered := catalog.Filter(all, category, req.Query)
	return &ListProjectsResult{
		Projects: filtered,
		Shown:    len(filtered),
		Total:    len(all),
	}, nil
}

// GetFeaturedProjects returns the projects flagged for the home page
func (s *service) GetFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return catalog.Featured(s.repo.AllProjects()), nil
}

// GetStats summarizes the catalog
func (s *service) GetStats(ctx context.Context) (catalog.Stats, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Stats{}, err
	}
	return catalog.ComputeStats(s.repo.AllProjects()), nil
}

// GetCategories returns the filter tabs, "all" first
func (s *service) GetCategories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return catalog.Categories(s.repo.AllProjects()), nil
}

// GetProgress returns the timeline completion percentage of a project
func (s *service) GetProgress(ctx context.Context, id string) (int, error) {
	p, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return catalog.Progress(p.Contributions.Timeline), nil
}
