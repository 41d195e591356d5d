// Package config provides configuration management for lume.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the lume configuration.
type Config struct {
	Search   SearchConfig   `yaml:"search"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Programs ProgramsConfig `yaml:"programs"`
	History  HistoryConfig  `yaml:"history"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SearchConfig holds search and ranking settings.
type SearchConfig struct {
	RecentLimit int `yaml:"recent_limit"` // Recents shown for an empty query
	FuzzyLimit  int `yaml:"fuzzy_limit"`  // Max fuzzy history matches per query
	MaxResults  int `yaml:"max_results"`  // Max results delivered to the UI (0 = unlimited)
}

// CatalogConfig holds package catalog settings.
type CatalogConfig struct {
	Path string `yaml:"path"` // Catalog JSON path (empty = bundled default)
}

// ProgramsConfig holds installed-program discovery settings.
type ProgramsConfig struct {
	Roots        []string `yaml:"roots"`         // Directories scanned for programs (empty = defaults)
	UseSpotlight bool     `yaml:"use_spotlight"` // Query Spotlight instead of walking roots
	HitLimit     int      `yaml:"hit_limit"`     // Max hits taken from the index per query
}

// HistoryConfig holds launch-history settings.
type HistoryConfig struct {
	Path        string `yaml:"path"`         // SQLite database path (empty = default)
	MaxEntries  int    `yaml:"max_entries"`  // History cap; oldest entries are evicted
	PruneWindow int    `yaml:"prune_window"` // Matches scoring this far behind the best are dropped
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file path (empty = default under the data dir)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			RecentLimit: 8,
			FuzzyLimit:  8,
			MaxResults:  0,
		},
		Catalog: CatalogConfig{},
		Programs: ProgramsConfig{
			UseSpotlight: false,
			HitLimit:     300,
		},
		History: HistoryConfig{
			MaxEntries:  200,
			PruneWindow: 120,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	paths := DefaultPaths()
	return LoadFromFile(paths.ConfigFile())
}

// LoadFromFile loads configuration from the specified file.
// If the file doesn't exist, returns default configuration.
// Environment variable overrides are applied after file loading.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to the default path.
func (c *Config) Save() error {
	paths := DefaultPaths()
	return c.SaveToFile(paths.ConfigFile())
}

// SaveToFile saves the configuration to the specified file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Search.RecentLimit < 0 {
		return errors.New("search.recent_limit must be >= 0")
	}
	if c.Search.FuzzyLimit < 0 {
		return errors.New("search.fuzzy_limit must be >= 0")
	}
	if c.Search.MaxResults < 0 {
		return errors.New("search.max_results must be >= 0")
	}
	if c.Programs.HitLimit < 0 {
		return errors.New("programs.hit_limit must be >= 0")
	}
	if c.History.MaxEntries < 0 {
		return errors.New("history.max_entries must be >= 0")
	}
	if c.History.PruneWindow < 0 {
		return errors.New("history.prune_window must be >= 0")
	}
	if !isValidLogLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got: %s)", c.Logging.Level)
	}
	return nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// ApplyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("LUME_DEBUG"); v == "1" {
		c.Logging.Level = "debug"
	}
	if v := os.Getenv("LUME_CATALOG_PATH"); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv("LUME_HISTORY_PATH"); v != "" {
		c.History.Path = v
	}
	if v := os.Getenv("LUME_RECENT_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Search.RecentLimit = n
		}
	}
}
