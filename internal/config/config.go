// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Default values applied by MergeWithDefaults.
const (
	DefaultPort              = 5000
	DefaultTemplate          = "professional"
	DefaultPDFTimeoutSeconds = 30
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
)

// Config represents the server configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Port            int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	DefaultTemplate string `json:"default_template,omitempty" validate:"omitempty,oneof=professional modern"`
	SampleData      string `json:"sample_data,omitempty"` // Path to a JSON or YAML sample profile

	PDFEnabled        bool `json:"pdf_enabled,omitempty"`
	PDFTimeoutSeconds int  `json:"pdf_timeout_seconds,omitempty" validate:"omitempty,min=1,max=300"`

	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=text json"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:              DefaultPort,
		DefaultTemplate:   DefaultTemplate,
		PDFTimeoutSeconds: DefaultPDFTimeoutSeconds,
		LogLevel:          DefaultLogLevel,
		LogFormat:         DefaultLogFormat,
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.SampleData != "" {
		if _, err := os.Stat(c.SampleData); os.IsNotExist(err) {
			return fmt.Errorf("config error: sample data file not found: %s", c.SampleData)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DefaultTemplate == "" {
		result.DefaultTemplate = defaults.DefaultTemplate
	}
	if result.SampleData == "" {
		result.SampleData = defaults.SampleData
	}
	if result.PDFTimeoutSeconds == 0 {
		result.PDFTimeoutSeconds = defaults.PDFTimeoutSeconds
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Bool fields cannot distinguish unset from false; CLI flags win.

	return result
}
