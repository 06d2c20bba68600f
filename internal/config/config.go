// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	NewsDir   string `json:"news_dir,omitempty"`  // Directory of JSON article files
	StocksDir string `json:"stocks_dir,omitempty"` // Directory of per-symbol CSV price files
	Gazetteer string `json:"gazetteer,omitempty"`  // Path to a gazetteer JSON file overriding the embedded tables

	// Ranking limits
	TopN        int     `json:"top_n,omitempty"`         // Maximum articles in the context
	MinScore    float64 `json:"min_score,omitempty"`     // Minimum relevance for non-exact matches
	MaxNonExact int     `json:"max_non_exact,omitempty"` // Maximum non-exact articles after exact matches

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.MinScore < 0 {
		return fmt.Errorf("config error: 'min_score' must be non-negative")
	}
	if c.MaxNonExact < 0 {
		return fmt.Errorf("config error: 'max_non_exact' must be non-negative")
	}

	// Validate paths exist (if specified)
	if c.NewsDir != "" {
		if _, err := os.Stat(c.NewsDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: news directory not found: %s", c.NewsDir)
		}
	}
	if c.StocksDir != "" {
		if _, err := os.Stat(c.StocksDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: stocks directory not found: %s", c.StocksDir)
		}
	}
	if c.Gazetteer != "" {
		if _, err := os.Stat(c.Gazetteer); os.IsNotExist(err) {
			return fmt.Errorf("config error: gazetteer file not found: %s", c.Gazetteer)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.NewsDir == "" {
		result.NewsDir = defaults.NewsDir
	}
	if result.StocksDir == "" {
		result.StocksDir = defaults.StocksDir
	}
	if result.Gazetteer == "" {
		result.Gazetteer = defaults.Gazetteer
	}

	// Numeric fields: use default if zero
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}
	if result.MaxNonExact == 0 {
		result.MaxNonExact = defaults.MaxNonExact
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
