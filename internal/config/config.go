// Package config provides configuration loading and validation for the
// screening service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or environment
// variables.
type Config struct {
	Port             int    `json:"port,omitempty"`              // HTTP listen port
	DatabaseURL      string `json:"database_url,omitempty"`      // PostgreSQL connection URL
	SearchIndexURL   string `json:"search_index_url,omitempty"`  // Optional search index endpoint
	BatchConcurrency int    `json:"batch_concurrency,omitempty"` // Concurrent applications per batch run
	Debug            bool   `json:"debug,omitempty"`             // Enable debug logging
	LogJSON          bool   `json:"log_json,omitempty"`          // Emit JSON logs instead of console
}

// Defaults applied when neither file nor environment provides a value.
const (
	DefaultPort             = 8080
	DefaultBatchConcurrency = 4
)

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
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

// FromEnv builds a Config from environment variables. Used when no config
// file is supplied.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SearchIndexURL: os.Getenv("SEARCH_INDEX_URL"),
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = p
	}

	if concurrency := os.Getenv("BATCH_CONCURRENCY"); concurrency != "" {
		c, err := strconv.Atoi(concurrency)
		if err != nil {
			return nil, fmt.Errorf("invalid BATCH_CONCURRENCY: %v", err)
		}
		cfg.BatchConcurrency = c
	}

	cfg.Debug = os.Getenv("DEBUG") == "true"
	cfg.LogJSON = os.Getenv("LOG_JSON") == "true"

	return cfg, nil
}

// ApplyDefaults fills zero-valued fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.BatchConcurrency == 0 {
		c.BatchConcurrency = DefaultBatchConcurrency
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'database_url' is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}
	if c.BatchConcurrency < 1 {
		return fmt.Errorf("config error: 'batch_concurrency' must be at least 1, got %d", c.BatchConcurrency)
	}
	return nil
}
