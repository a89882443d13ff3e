package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/bach-end/Portfolio/internal/app"
	"github.com/bach-end/Portfolio/internal/config"
	"github.com/bach-end/Portfolio/internal/tui"
)

// Launch starts the browser and blocks until the user quits or ctx is cancelled
func Launch(ctx context.Context, application *app.App, cfg *config.Config) error {
	model, err := tui.New(ctx, application.ProjectService, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize browser: %w", err)
	}

	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// the program sees the same context and restores the terminal
		if err := <-errChan; err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("error running program: %w", err)
		}
	}

	return nil
}
