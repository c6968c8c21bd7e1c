// Package config provides configuration loading and validation for the
// match engine CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the engine configuration loadable from a JSON file. All fields
// are optional; missing values use defaults or come from CLI flags and
// environment variables.
type Config struct {
	// Paths
	TravelTable string `json:"travel_table,omitempty"` // Path to a JSON travel-time table

	// Services
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	RedisAddr   string `json:"redis_addr,omitempty"`   // Redis address for travel table hydration
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for the semantic strategy

	// Matching defaults
	Workers  int     `json:"workers,omitempty"`   // Batch worker pool size, 0 = NumCPU
	Limit    int     `json:"limit,omitempty"`     // Default best-N limit
	MinScore float64 `json:"min_score,omitempty"` // Default best-N score cutoff

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // console or json
}

// DefaultConfig returns the defaults applied when nothing else is set.
func DefaultConfig() Config {
	return Config{
		Limit:     10,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// Validate checks numeric ranges and referenced file paths.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}
	if c.MinScore < 0 || c.MinScore > 1 {
		return fmt.Errorf("config error: 'min_score' must be in [0, 1]")
	}
	if c.TravelTable != "" {
		if _, err := os.Stat(c.TravelTable); os.IsNotExist(err) {
			return fmt.Errorf("config error: travel table not found: %s", c.TravelTable)
		}
	}
	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("config error: unknown log format %q", c.LogFormat)
	}
	return nil
}

// MergeWithDefaults returns a copy with empty fields filled from defaults.
// CLI flags always win over both.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.TravelTable == "" {
		result.TravelTable = defaults.TravelTable
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}

	return result
}
