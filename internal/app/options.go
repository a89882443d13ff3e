package app

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	submitDelay time.Duration
	logger      *slog.Logger
}

// WithSubmitDelay sets how long a contact submission pretends to take
func WithSubmitDelay(d time.Duration) Option {
	return func(cfg *appConfig) {
		cfg.submitDelay = d
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
