package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the granule URL fetcher
type Config struct {
	// Catalog endpoint settings
	Catalog CatalogConfig `yaml:"catalog" json:"catalog"`

	// Fetch behavior settings
	Fetch FetchConfig `yaml:"fetch" json:"fetch"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// CatalogConfig holds ECHO catalog endpoint configuration
type CatalogConfig struct {
	BaseURL  string `yaml:"base_url" json:"base_url"`
	Dataset  string `yaml:"dataset" json:"dataset"`
	PageSize int    `yaml:"page_size" json:"page_size"`
}

// FetchConfig holds pagination and retry configuration
type FetchConfig struct {
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`
	MaxPages   int           `yaml:"max_pages" json:"max_pages"`
	MaxRetries int           `yaml:"max_retries" json:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay" json:"retry_delay"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:  "https://api.echo.nasa.gov/catalog-rest/echo_catalog/granules.json?",
			Dataset:  "MODIS/Terra Surface Reflectance Daily L2G Global 1km and 500m SIN Grid V005",
			PageSize: 2000,
		},
		Fetch: FetchConfig{
			Timeout:    30 * time.Second,
			MaxPages:   500,
			MaxRetries: 3,
			RetryDelay: 2 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if baseURL := os.Getenv("ECHOFETCH_BASE_URL"); baseURL != "" {
		c.Catalog.BaseURL = baseURL
	}
	if dataset := os.Getenv("ECHOFETCH_DATASET"); dataset != "" {
		c.Catalog.Dataset = dataset
	}
	if pageSize := os.Getenv("ECHOFETCH_PAGE_SIZE"); pageSize != "" {
		var val int
		fmt.Sscanf(pageSize, "%d", &val)
		if val > 0 {
			c.Catalog.PageSize = val
		}
	}
	if maxPages := os.Getenv("ECHOFETCH_MAX_PAGES"); maxPages != "" {
		var val int
		fmt.Sscanf(maxPages, "%d", &val)
		if val > 0 {
			c.Fetch.MaxPages = val
		}
	}
	if timeout := os.Getenv("ECHOFETCH_TIMEOUT"); timeout != "" {
		if dur, err := time.ParseDuration(timeout); err == nil && dur > 0 {
			c.Fetch.Timeout = dur
		}
	}
	if logLevel := os.Getenv("ECHOFETCH_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	// Check in order of precedence
	locations := []string{
		".echofetch.yaml",
		".echofetch.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "echofetch", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "echofetch", "config.yml"),
		filepath.Join(os.Getenv("HOME"), ".echofetch.yaml"),
		filepath.Join(os.Getenv("HOME"), ".echofetch.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Catalog.BaseURL == "" {
		errs = append(errs, errors.New("catalog base URL is required"))
	}
	if c.Catalog.Dataset == "" {
		errs = append(errs, errors.New("catalog dataset is required"))
	}
	if c.Catalog.PageSize <= 0 {
		errs = append(errs, errors.New("page size must be positive"))
	}
	if c.Fetch.Timeout <= 0 {
		errs = append(errs, errors.New("request timeout must be positive"))
	}
	if c.Fetch.MaxPages <= 0 {
		errs = append(errs, errors.New("max pages must be positive"))
	}
	if c.Fetch.MaxRetries < 0 {
		errs = append(errs, errors.New("max retries cannot be negative"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration.
// Only flags the user actually set should appear in the map.
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	for key, value := range flags {
		switch key {
		case "base-url":
			if v, ok := value.(string); ok && v != "" {
				c.Catalog.BaseURL = v
			}
		case "dataset":
			if v, ok := value.(string); ok && v != "" {
				c.Catalog.Dataset = v
			}
		case "page-size":
			if v, ok := value.(int); ok && v > 0 {
				c.Catalog.PageSize = v
			}
		case "max-pages":
			if v, ok := value.(int); ok && v > 0 {
				c.Fetch.MaxPages = v
			}
		case "max-retries":
			if v, ok := value.(int); ok && v >= 0 {
				c.Fetch.MaxRetries = v
			}
		case "timeout":
			if v, ok := value.(time.Duration); ok && v > 0 {
				c.Fetch.Timeout = v
			}
		case "log-level":
			if v, ok := value.(string); ok && v != "" {
				c.Logging.Level = v
			}
		}
	}
}

// Load builds the effective configuration from defaults, an optional
// config file, environment variables, and command line flags, in
// increasing order of precedence.
func Load(path string, flags map[string]interface{}) (*Config, error) {
	// Pick up a .env file if one is present
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if err := cfg.LoadFromFile(path); err != nil {
		return nil, err
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	cfg.MergeCommandLineFlags(flags)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
