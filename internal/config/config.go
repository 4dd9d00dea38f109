// Package config provides configuration loading and structs for the suggest server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/festmap/suggest/internal/ranking"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool                  `yaml:"debug"`
	Server  ServerConfig          `yaml:"server"`
	History HistoryConfig         `yaml:"history"`
	RefData RefDataConfig         `yaml:"refdata"`
	Places  PlacesConfig          `yaml:"places"`
	Suggest SuggestConfig         `yaml:"suggest"`
	Ranking ranking.ScoringConfig `yaml:"ranking"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// HistoryConfig holds the search-history store settings.
type HistoryConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// RefDataConfig holds the reference-data override file settings.
// Path is optional; without it the built-in lists are used.
type RefDataConfig struct {
	Path  string `yaml:"path"`
	Watch *bool  `yaml:"watch"`
}

// WatchOrDefault returns whether to hot-reload the override file; defaults to
// true when a path is configured and the flag is unset.
func (r *RefDataConfig) WatchOrDefault() bool {
	if r.Watch != nil {
		return *r.Watch
	}
	return r.Path != ""
}

// PlacesConfig holds the network place-lookup settings.
type PlacesConfig struct {
	Enabled              *bool  `yaml:"enabled"`
	BaseURL              string `yaml:"base_url"`
	UserAgent            string `yaml:"user_agent"`
	Limit                int    `yaml:"limit"`
	TimeoutMS            int    `yaml:"timeout_ms"`
	MinRequestIntervalMS int    `yaml:"min_request_interval_ms"`
}

// EnabledOrDefault returns whether place lookups run; defaults to true.
func (p *PlacesConfig) EnabledOrDefault() bool {
	if p.Enabled != nil {
		return *p.Enabled
	}
	return true
}

// Timeout returns the HTTP timeout for place lookups.
func (p *PlacesConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutMS) * time.Millisecond
}

// MinRequestInterval returns the minimum spacing between place lookups.
func (p *PlacesConfig) MinRequestInterval() time.Duration {
	return time.Duration(p.MinRequestIntervalMS) * time.Millisecond
}

// SuggestConfig holds the debounce settings.
type SuggestConfig struct {
	SettleDelayMS int `yaml:"settle_delay_ms"`
}

// SettleDelay returns how long input must stay unchanged before work fires.
func (s *SuggestConfig) SettleDelay() time.Duration {
	return time.Duration(s.SettleDelayMS) * time.Millisecond
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.History.DatabasePath = expandPath(cfg.History.DatabasePath, configDir)
	if cfg.RefData.Path != "" {
		cfg.RefData.Path = expandPath(cfg.RefData.Path, configDir)
	}

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
