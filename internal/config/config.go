// Package config loads the roastcli configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the full roastcli configuration
type Config struct {
	API         APIConfig         `yaml:"api"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Log         LogConfig         `yaml:"log"`
}

// APIConfig contains gateway settings
type APIConfig struct {
	// BaseURL is the server root, without the /api prefix
	BaseURL   string `yaml:"baseUrl"`
	TimeoutMs int    `yaml:"timeoutMs"`
}

// LeaderboardConfig contains leaderboard fetch settings
type LeaderboardConfig struct {
	Limit int `yaml:"limit"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "http://localhost:3000",
			TimeoutMs: 10000,
		},
		Leaderboard: LeaderboardConfig{
			Limit: 50,
		},
		Log: LogConfig{
			Level: "info",
			File:  "", // stderr
		},
	}
}

// DefaultPath returns the standard config location under the user
// config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(configDir, "roastcli", "config.yaml"), nil
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. Missing fields are filled from defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return MergeWithDefaults(&cfg), nil
}

// Save writes the configuration to the given path
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaults.API.BaseURL
	}
	if cfg.API.TimeoutMs == 0 {
		cfg.API.TimeoutMs = defaults.API.TimeoutMs
	}
	if cfg.Leaderboard.Limit == 0 {
		cfg.Leaderboard.Limit = defaults.Leaderboard.Limit
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}
