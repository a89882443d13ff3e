package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bach-end/Portfolio/internal/app"
	"github.com/bach-end/Portfolio/internal/config"
	"github.com/bach-end/Portfolio/internal/data"
)

// ErrNoCLI is returned when a command runs without an initialized CLI in its context
var ErrNoCLI = errors.New("cli not initialized")

type contextKey struct{}

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
}

// NewCLI loads the catalog named by cfg and builds the application container
func NewCLI(cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	catalog, err := data.Load(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	application := app.New(catalog,
		app.WithSubmitDelay(cfg.Contact.SubmitDelay),
		app.WithLogger(slog.Default()),
	)

	return &CLI{App: application, Config: cfg}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

// WithCLI stores c in ctx for subcommands to pick up
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(contextKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}

type configKey struct{}

// WithConfig stores the loaded configuration for commands that run without a catalog
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig or WithCLI,
// falling back to the defaults
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	if c, err := GetCLIFromContext(ctx); err == nil && c.Config != nil {
		return c.Config
	}
	return config.Default()
}
