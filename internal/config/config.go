// Package config loads and validates the service configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the service configuration.
type Config struct {
	// HTTP server configuration
	Server ServerConfig `toml:"server"`

	// Database configuration
	Database DatabaseConfig `toml:"database"`

	// Analytics engine configuration
	Analytics AnalyticsConfig `toml:"analytics"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port           int      `toml:"port"`            // Listen port
	AllowedOrigins []string `toml:"allowed_origins"` // CORS origins
}

// DatabaseConfig contains SQLite settings.
type DatabaseConfig struct {
	Path        string `toml:"path"`         // Path to the SQLite database
	AutoMigrate bool   `toml:"auto_migrate"` // Run pending migrations on startup
}

// AnalyticsConfig contains engine defaults and request bounds.
type AnalyticsConfig struct {
	MinMatches  int `toml:"min_matches"`  // Minimum match sample before a win rate is shown
	DefaultDays int `toml:"default_days"` // Window length when the caller omits one
	MaxDays     int `toml:"max_days"`     // Upper bound on any requested window length
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Path:        defaultDBPath(),
			AutoMigrate: true,
		},
		Analytics: AnalyticsConfig{
			MinMatches:  3,
			DefaultDays: 14,
			MaxDays:     365,
		},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "meta.db"
	}
	return filepath.Join(home, ".mtg-meta-service", "meta.db")
}

// Load loads the configuration from path. A missing file yields the default
// configuration; a present but malformed one is an error.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if c.Analytics.MinMatches < 1 {
		return fmt.Errorf("min matches must be at least 1: %d", c.Analytics.MinMatches)
	}
	if c.Analytics.DefaultDays < 1 {
		return fmt.Errorf("default days must be positive: %d", c.Analytics.DefaultDays)
	}
	if c.Analytics.MaxDays < c.Analytics.DefaultDays {
		return fmt.Errorf("max days (%d) cannot be below default days (%d)",
			c.Analytics.MaxDays, c.Analytics.DefaultDays)
	}
	return nil
}
