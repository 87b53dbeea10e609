// Package config provides configuration management for the headlines tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"headlines/pkg/utils"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// APIKeyEnv is the environment variable holding the provider credential.
const APIKeyEnv = "NEWS_API_KEY"

// Configuration validation errors.
var (
	ErrMissingBaseURL      = errors.New("provider.base_url is required")
	ErrInvalidBaseURL      = errors.New("provider.base_url must be an absolute http(s) URL")
	ErrMissingCountry      = errors.New("provider.country is required")
	ErrInvalidTimeout      = errors.New("provider.timeout_sec must be at least 1")
	ErrMissingSnapshotPath = errors.New("output.snapshot is required")
	ErrMissingCSVPath      = errors.New("output.csv is required")
	ErrMissingExcelPath    = errors.New("output.excel is required")
	ErrInvalidSheetName    = errors.New("output.sheet must be at most 31 characters without : \\ / ? * [ ] or surrounding quotes")
	ErrMissingLogFile      = errors.New("logging.file is required")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete run configuration.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
	Features FeaturesConfig `yaml:"features"`
}

// ProviderConfig describes the headline feed endpoint.
type ProviderConfig struct {
	BaseURL    string `yaml:"base_url"`
	Country    string `yaml:"country"`
	APIKey     string `yaml:"api_key"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// OutputConfig defines where snapshot and export files are written.
// Relative file paths are resolved against Dir.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Snapshot string `yaml:"snapshot"`
	CSV      string `yaml:"csv"`
	Excel    string `yaml:"excel"`
	Sheet    string `yaml:"sheet"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// FeaturesConfig contains feature flags.
type FeaturesConfig struct {
	StrictValidation bool `yaml:"strict_validation"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Provider: ProviderConfig{
			BaseURL:    "https://newsapi.org",
			Country:    "us",
			TimeoutSec: 10,
		},
		Output: OutputConfig{
			Dir:      ".",
			Snapshot: filepath.Join("data", "news_data.json"),
			CSV:      "news.csv",
			Excel:    "news.xlsx",
			Sheet:    "News",
		},
		Logging: LoggingConfig{
			File:  "news.log",
			Level: "info",
		},
		Features: FeaturesConfig{
			StrictValidation: true,
		},
	}
}

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "headlines", "config.yaml")
}

// LoadConfig loads configuration from a YAML file layered over Default.
// An empty path means DefaultConfigPath, which may be absent.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// no user config, defaults apply
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Provider.BaseURL == "" {
		return ErrMissingBaseURL
	}

	if !utils.NewHTTPHelper().IsValidURL(c.Provider.BaseURL) {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.Provider.BaseURL)
	}

	if c.Provider.Country == "" {
		return ErrMissingCountry
	}

	if c.Provider.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Output.Snapshot == "" {
		return ErrMissingSnapshotPath
	}

	if c.Output.CSV == "" {
		return ErrMissingCSVPath
	}

	if c.Output.Excel == "" {
		return ErrMissingExcelPath
	}

	if !validSheetName(c.Output.Sheet) {
		return fmt.Errorf("%w: %q", ErrInvalidSheetName, c.Output.Sheet)
	}

	if c.Logging.File == "" {
		return ErrMissingLogFile
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// maxSheetName is the worksheet name limit of the xlsx format.
const maxSheetName = 31

// validSheetName reports whether name is accepted as a worksheet name.
// An empty name selects the exporter default.
func validSheetName(name string) bool {
	if name == "" {
		return true
	}

	if utf8.RuneCountInString(name) > maxSheetName {
		return false
	}

	if strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'") {
		return false
	}

	return !strings.ContainsAny(name, `:\/?*[]`)
}

// LoadAPIKey resolves the provider credential. A .env file in the working
// directory is loaded first when present; the environment wins over the
// value from the config file.
func (c *Config) LoadAPIKey() string {
	// godotenv never overrides variables that are already set
	_ = godotenv.Load()

	if key := os.Getenv(APIKeyEnv); key != "" {
		return key
	}

	return c.Provider.APIKey
}

// GetTimeout returns the provider request timeout.
func (p *ProviderConfig) GetTimeout() time.Duration {
	return time.Duration(p.TimeoutSec) * time.Second
}

// Resolve joins a configured file path with the output directory.
func (o *OutputConfig) Resolve(path string) string {
	if filepath.IsAbs(path) || o.Dir == "" {
		return path
	}

	return filepath.Join(o.Dir, path)
}

// SnapshotPath returns the resolved snapshot location.
func (o *OutputConfig) SnapshotPath() string {
	return o.Resolve(o.Snapshot)
}

// CSVPath returns the resolved CSV export location.
func (o *OutputConfig) CSVPath() string {
	return o.Resolve(o.CSV)
}

// ExcelPath returns the resolved spreadsheet export location.
func (o *OutputConfig) ExcelPath() string {
	return o.Resolve(o.Excel)
}

// LogPath returns the resolved process log location.
func (c *Config) LogPath() string {
	return c.Output.Resolve(c.Logging.File)
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Provider: %s, Country: %s, Timeout: %ds, Output: %s}",
		c.Provider.BaseURL,
		c.Provider.Country,
		c.Provider.TimeoutSec,
		c.Output.Dir,
	)
}
