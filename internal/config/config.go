// Package config provides configuration loading and validation for the CLI
// and the gateway server.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// ServiceURL is the base URL of the remote generation service.
	ServiceURL string `json:"service_url,omitempty"`

	// Port is the gateway server listen port.
	Port int `json:"port,omitempty"`

	// TimeoutSeconds bounds each call to the generation service.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`

	// OutputDir is where the CLI saves generated image artifacts.
	OutputDir string `json:"output_dir,omitempty"`

	// Verbose prints detailed summaries of normalized jobs.
	Verbose bool `json:"verbose,omitempty"`
}

// Environment variable names recognized as overrides.
const (
	EnvServiceURL = "GENERATION_SERVICE_URL"
	EnvPort       = "GATEWAY_PORT"
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Port:           8080,
		TimeoutSeconds: 120,
		OutputDir:      "generated",
	}
}

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

// FromEnv returns a Config populated from environment variable overrides.
func FromEnv() Config {
	var cfg Config
	cfg.ServiceURL = os.Getenv(EnvServiceURL)
	if port := os.Getenv(EnvPort); port != "" {
		_, _ = fmt.Sscanf(port, "%d", &cfg.Port)
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.ServiceURL == "" {
		return fmt.Errorf("config error: 'service_url' is required (or set %s)", EnvServiceURL)
	}
	parsed, err := url.Parse(c.ServiceURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config error: 'service_url' is not a valid URL: %s", c.ServiceURL)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	return nil
}

// Timeout returns the service call timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to layer config file values under CLI flags and
// environment overrides.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ServiceURL == "" {
		result.ServiceURL = defaults.ServiceURL
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
