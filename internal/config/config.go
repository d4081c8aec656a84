package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// ConfigFileEnvVar names a YAML file to load when --config is not given
const ConfigFileEnvVar = "TASKS_CONFIG"

// Config holds all configuration options for the task tracker
type Config struct {
	Auth        AuthConfig        `yaml:"auth"`
	Validation  ValidationConfig  `yaml:"validation"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
}

// AuthConfig holds the seeded account and password hashing settings
type AuthConfig struct {
	DefaultUsername string `yaml:"default_username" env:"TASKS_DEFAULT_USERNAME"`
	DefaultPassword string `yaml:"default_password" env:"TASKS_DEFAULT_PASSWORD"`
	BcryptCost      int    `yaml:"bcrypt_cost" env:"TASKS_BCRYPT_COST"`
}

// ValidationConfig holds validation rules configuration.
// A DescriptionMaxLength of 0 means descriptions are not limited.
type ValidationConfig struct {
	DescriptionMaxLength int `yaml:"description_max_length" env:"TASKS_DESCRIPTION_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `yaml:"date_format" env:"TASKS_DATE_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"TASKS_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"TASKS_APP_VERBOSE"`
	Prompt  string        `yaml:"prompt" env:"TASKS_PROMPT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Auth: AuthConfig{
			DefaultUsername: "admin",
			DefaultPassword: "admin123",
			BcryptCost:      bcrypt.DefaultCost,
		},
		Validation: ValidationConfig{
			DescriptionMaxLength: 0,
		},
		Display: DisplayConfig{
			DateFormat: "2006-01-02",
		},
		Application: ApplicationConfig{
			Timeout: 10 * time.Second,
			Verbose: false,
			Prompt:  "> ",
		},
	}
}

// GetCommandTimeout returns the deadline applied to each shell command
func (c *Config) GetCommandTimeout() time.Duration {
	return c.Application.Timeout
}

// LoadFromFile overlays the YAML file at path onto the configuration.
// Keys absent from the file keep their current values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigError{Field: "config_file", Message: fmt.Sprintf("cannot read %s: %v", path, err)}
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &ConfigError{Field: "config_file", Message: fmt.Sprintf("cannot parse %s: %v", path, err)}
	}
	return nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Auth configuration
	if username := os.Getenv("TASKS_DEFAULT_USERNAME"); username != "" {
		c.Auth.DefaultUsername = username
	}
	if password := os.Getenv("TASKS_DEFAULT_PASSWORD"); password != "" {
		c.Auth.DefaultPassword = password
	}
	if cost := os.Getenv("TASKS_BCRYPT_COST"); cost != "" {
		n, err := strconv.Atoi(cost)
		if err != nil {
			return envError("TASKS_BCRYPT_COST", cost, "an integer")
		}
		c.Auth.BcryptCost = n
	}

	// Validation configuration
	if maxLen := os.Getenv("TASKS_DESCRIPTION_MAX"); maxLen != "" {
		n, err := strconv.Atoi(maxLen)
		if err != nil {
			return envError("TASKS_DESCRIPTION_MAX", maxLen, "an integer")
		}
		c.Validation.DescriptionMaxLength = n
	}

	// Display configuration
	if format := os.Getenv("TASKS_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}

	// Application configuration
	if timeout := os.Getenv("TASKS_APP_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return envError("TASKS_APP_TIMEOUT", timeout, "a duration such as 10s")
		}
		c.Application.Timeout = d
	}
	if verbose := os.Getenv("TASKS_APP_VERBOSE"); verbose != "" {
		b, err := strconv.ParseBool(verbose)
		if err != nil {
			return envError("TASKS_APP_VERBOSE", verbose, "a boolean")
		}
		c.Application.Verbose = b
	}
	if prompt := os.Getenv("TASKS_PROMPT"); prompt != "" {
		c.Application.Prompt = prompt
	}

	return nil
}

func envError(name, value, expected string) error {
	return &ConfigError{Field: name, Message: fmt.Sprintf("%q is not %s", value, expected)}
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Same rule as registration: any username that is not blank
	if strings.TrimSpace(c.Auth.DefaultUsername) == "" {
		return &ConfigError{Field: "auth.default_username", Message: "default username cannot be empty"}
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return &ConfigError{Field: "auth.bcrypt_cost", Message: fmt.Sprintf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)}
	}

	if c.Validation.DescriptionMaxLength < 0 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length cannot be negative"}
	}

	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
