package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", c.Server.Port)
	}
	if c.Analytics.MinMatches != 3 {
		t.Errorf("min matches = %d, want 3", c.Analytics.MinMatches)
	}
	if c.Analytics.DefaultDays != 14 || c.Analytics.MaxDays != 365 {
		t.Errorf("day bounds = %d/%d, want 14/365", c.Analytics.DefaultDays, c.Analytics.MaxDays)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Port != 8080 {
		t.Errorf("port = %d, want default 8080", c.Server.Port)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = 9090

[database]
path = "/tmp/test-meta.db"
auto_migrate = false

[analytics]
min_matches = 5
default_days = 7
max_days = 90
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", c.Server.Port)
	}
	if c.Database.Path != "/tmp/test-meta.db" || c.Database.AutoMigrate {
		t.Errorf("database config = %+v", c.Database)
	}
	if c.Analytics.MinMatches != 5 || c.Analytics.DefaultDays != 7 || c.Analytics.MaxDays != 90 {
		t.Errorf("analytics config = %+v", c.Analytics)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server\nport ="), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"empty db path", func(c *Config) { c.Database.Path = "" }},
		{"zero min matches", func(c *Config) { c.Analytics.MinMatches = 0 }},
		{"zero default days", func(c *Config) { c.Analytics.DefaultDays = 0 }},
		{"max below default", func(c *Config) { c.Analytics.MaxDays = 7; c.Analytics.DefaultDays = 14 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	c := DefaultConfig()
	c.Server.Port = 3000

	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Server.Port != 3000 {
		t.Errorf("port = %d, want 3000", loaded.Server.Port)
	}
}
