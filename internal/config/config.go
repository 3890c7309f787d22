// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied by MergeWithDefaults callers
const (
	DefaultPort           = 8080
	DefaultMaxBodyBytes   = 1 << 20
	DefaultTimeoutSeconds = 60
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Generator
	APIKey    string `json:"api_key,omitempty" yaml:"api_key,omitempty"`       // Gemini API key
	ModelTier string `json:"model_tier,omitempty" yaml:"model_tier,omitempty"` // lite, standard or advanced

	// Analysis context
	Job     string `json:"job,omitempty" yaml:"job,omitempty"`           // Path to a job description file
	JobText string `json:"job_text,omitempty" yaml:"job_text,omitempty"` // Inline job description

	// Server
	Port           int   `json:"port,omitempty" yaml:"port,omitempty"`
	MaxBodyBytes   int64 `json:"max_body_bytes,omitempty" yaml:"max_body_bytes,omitempty"`
	TimeoutSeconds int   `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"` // Generator call timeout

	// Behavior
	Verbose        bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`                 // Print detailed debug information
	ValidateOutput bool `json:"validate_output,omitempty" yaml:"validate_output,omitempty"` // Check every record against its JSON Schema
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Files without a known extension are tried as YAML, then JSON.
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
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	default:
		if yerr := yaml.Unmarshal(data, &cfg); yerr != nil {
			cfg = Config{}
			if jerr := json.Unmarshal(data, &cfg); jerr != nil {
				return nil, fmt.Errorf("failed to parse config: %v (yaml) / %v (json)", yerr, jerr)
			}
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required values are checked by the commands that need them, after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobText != "" {
		return fmt.Errorf("config error: 'job' and 'job_text' are mutually exclusive")
	}

	switch c.ModelTier {
	case "", "lite", "standard", "advanced":
	default:
		return fmt.Errorf("config error: 'model_tier' must be lite, standard or advanced, got %q", c.ModelTier)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("config error: 'max_body_bytes' must be non-negative")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ModelTier == "" {
		result.ModelTier = defaults.ModelTier
	}
	if result.Job == "" && result.JobText == "" {
		result.Job = defaults.Job
		result.JobText = defaults.JobText
	}

	if result.Port == 0 {
		result.Port = orDefault(defaults.Port, DefaultPort)
	}
	if result.MaxBodyBytes == 0 {
		result.MaxBodyBytes = orDefault(defaults.MaxBodyBytes, DefaultMaxBodyBytes)
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = orDefault(defaults.TimeoutSeconds, DefaultTimeoutSeconds)
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// JobContext returns the job description to analyze against, reading Job if set.
func (c *Config) JobContext() (string, error) {
	if c.Job == "" {
		return c.JobText, nil
	}
	data, err := os.ReadFile(c.Job)
	if err != nil {
		return "", fmt.Errorf("failed to read job file %s: %w", c.Job, err)
	}
	return string(data), nil
}

func orDefault[T int | int64](v, fallback T) T {
	if v > 0 {
		return v
	}
	return fallback
}
