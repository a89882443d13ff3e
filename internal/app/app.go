package app

import (
	"log/slog"

	"github.com/bach-end/Portfolio/internal/data"
	contactservice "github.com/bach-end/Portfolio/internal/services/contact"
	projectservice "github.com/bach-end/Portfolio/internal/services/project"
	teamservice "github.com/bach-end/Portfolio/internal/services/team"
)

// App holds all application services and provides dependency injection.
// This is the main application container; it is built once per process
// from a read-only catalog.
type App struct {
	logger *slog.Logger

	// Service layer
	ProjectService projectservice.Service
	TeamService    teamservice.Service
	ContactService contactservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(catalog *data.Catalog, opts ...Option) *App {
	cfg := appConfig{
		submitDelay: contactservice.DefaultSubmitDelay,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if catalog == nil {
		catalog = &data.Catalog{}
	}

	cfg.logger.Debug("app initialized",
		"projects", len(catalog.Projects),
		"team", len(catalog.Team),
		"submit_delay", cfg.submitDelay)

	return &App{
		logger:         cfg.logger,
		ProjectService: projectservice.NewService(catalog),
		TeamService:    teamservice.NewService(catalog),
		ContactService: contactservice.NewService(cfg.submitDelay),
	}
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close performs cleanup of application resources.
// Currently a no-op, but provided for future resource management needs.
func (a *App) Close() error {
	return nil
}
