package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultSubmitDelay = time.Second
)

// Config represents the application configuration.
// Values come from the YAML file first, then PORTFOLIO_* environment variables.
type Config struct {
	// DataDir holds projects.json, team.json and milestones.json.
	// Empty means the data compiled into the binary.
	DataDir     string        `yaml:"data_dir" env:"PORTFOLIO_DATA_DIR"`
	LogLevel    string        `yaml:"log_level" env:"PORTFOLIO_LOG_LEVEL"`
	Contact     ContactConfig `yaml:"contact"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`

	// ThemeFile is merged over the theme section; never written back
	ThemeFile string `yaml:"-" env:"PORTFOLIO_THEME_FILE"`
}

// ContactConfig controls the contact form
type ContactConfig struct {
	SubmitDelay time.Duration `yaml:"submit_delay" env:"PORTFOLIO_SUBMIT_DELAY"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		LogLevel:    DefaultLogLevel,
		Contact:     ContactConfig{SubmitDelay: DefaultSubmitDelay},
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	return cfg
}

// loadThemeFile loads and merges theme from the configured theme file
func loadThemeFile(config *Config) {
	if config.ThemeFile == "" {
		return
	}

	themeData, err := os.ReadFile(config.ThemeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", config.ThemeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", config.ThemeFile, "error", err)
		return
	}

	// A preset switch in the theme file replaces the whole palette
	if themeConfig.Theme.Preset != "" && themeConfig.Theme.Preset != config.ColorScheme.Preset {
		config.ColorScheme = ColorScheme{}
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		// Fall back to defaults if we can't determine config path
		return finish(Default())
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from path, returning defaults if the file doesn't exist
func LoadFrom(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return finish(config)
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	// Unmarshal over the defaults so absent keys keep their default value.
	// The theme starts empty so a preset named in the file supplies its own colors.
	config.ColorScheme = ColorScheme{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return finish(config)
}

// finish applies environment overrides, the theme file and defaults
func finish(config *Config) (*Config, error) {
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if config.Contact.SubmitDelay < 0 {
		return nil, fmt.Errorf("contact.submit_delay must not be negative, got %s", config.Contact.SubmitDelay)
	}

	loadThemeFile(config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "portfolio", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "portfolio", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
