package data

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/bach-end/Portfolio/internal/models"
)

// Data file names inside a catalog directory
const (
	ProjectsFile   = "projects.json"
	TeamFile       = "team.json"
	MilestonesFile = "milestones.json"
)

//go:embed defaults/*.json
var defaults embed.FS

// Loader errors
var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrMissingID   = errors.New("missing id")
)

// Catalog is the read-only site content loaded at start-up.
// It is constructed once and handed to the services; nothing mutates it afterwards.
type Catalog struct {
	Projects   []models.Project
	Team       []models.TeamMember
	Milestones []models.Milestone
}

// Load reads the catalog from dir, or from the copy embedded in the binary
// when dir is empty.
func Load(dir string) (*Catalog, error) {
	if dir == "" {
		return Default()
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("data directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data directory %s is not a directory", dir)
	}

	slog.Debug("loading catalog", "dir", dir)
	return LoadFS(os.DirFS(dir))
}

// Default returns the catalog embedded in the binary
func Default() (*Catalog, error) {
	sub, err := fs.Sub(defaults, "defaults")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadFS reads the catalog files from fsys.
// projects.json and team.json are required; milestones.json is optional.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	var c Catalog

	if err := decodeFile(fsys, ProjectsFile, &c.Projects); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, TeamFile, &c.Team); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, MilestonesFile, &c.Milestones); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		c.Milestones = []models.Milestone{}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	slog.Info("catalog loaded",
		"projects", len(c.Projects),
		"team", len(c.Team),
		"milestones", len(c.Milestones))
	return &c, nil
}

func decodeFile(fsys fs.FS, name string, target any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// validate enforces unique, non-empty IDs for projects and team members
func (c *Catalog) validate() error {
	seen := make(map[string]struct{}, len(c.Projects))
	for i, p := range c.Projects {
		if p.ID == "" {
			return fmt.Errorf("%s entry %d: %w", ProjectsFile, i, ErrMissingID)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%s: %w %q", ProjectsFile, ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(c.Team))
	for i, m := range c.Team {
		if m.ID == "" {
			return fmt.Errorf("%s entry %d: %w", TeamFile, i, ErrMissingID)
		}
		if _, ok := seen[m.ID]; ok {
			return fmt.Errorf("%s: %w %q", TeamFile, ErrDuplicateID, m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}

// AllProjects returns the loaded projects. Callers must not modify the result.
func (c *Catalog) AllProjects() []models.Project {
	return c.Projects
}

// AllMembers returns the loaded team members. Callers must not modify the result.
func (c *Catalog) AllMembers() []models.TeamMember {
	return c.Team
}

// AllMilestones returns the loaded milestones. Callers must not modify the result.
func (c *Catalog) AllMilestones() []models.Milestone {
	return c.Milestones
}
