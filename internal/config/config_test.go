package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// validConfigYAML overrides a subset of the defaults.
const validConfigYAML = `
provider:
  base_url: "http://localhost:8080"
  country: "gb"
  timeout_sec: 5
output:
  dir: "/tmp/headlines"
  csv: "out/headlines.csv"
logging:
  level: "debug"
features:
  strict_validation: false
`

func TestLoadConfig_Valid(t *testing.T) {
	configPath := createTempConfigFile(t, validConfigYAML)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Provider.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected BaseURL 'http://localhost:8080', got '%s'", cfg.Provider.BaseURL)
	}

	if cfg.Provider.Country != "gb" {
		t.Errorf("Expected Country 'gb', got '%s'", cfg.Provider.Country)
	}

	if cfg.Provider.GetTimeout() != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %v", cfg.Provider.GetTimeout())
	}

	if cfg.Features.StrictValidation {
		t.Error("Expected strict_validation to be overridden to false")
	}

	// Untouched keys keep their defaults
	if cfg.Output.Excel != "news.xlsx" {
		t.Errorf("Expected default Excel path 'news.xlsx', got '%s'", cfg.Output.Excel)
	}

	if cfg.Logging.File != "news.log" {
		t.Errorf("Expected default log file 'news.log', got '%s'", cfg.Logging.File)
	}

	want := filepath.Join("/tmp/headlines", "out", "headlines.csv")
	if cfg.Output.CSVPath() != want {
		t.Errorf("Expected CSV path %s, got %s", want, cfg.Output.CSVPath())
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("Expected error for nonexistent file, got nil")
	}
}

func TestLoadConfig_DefaultPathMissing(t *testing.T) {
	if _, err := os.Stat(DefaultConfigPath()); err == nil {
		t.Skip("user config present")
	}

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig with missing default path failed: %v", err)
	}

	if cfg.Provider.TimeoutSec != 10 {
		t.Errorf("Expected default timeout 10, got %d", cfg.Provider.TimeoutSec)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := createTempConfigFile(t, "invalid: yaml: content: [}")

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid YAML, got nil")
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	configPath := createTempConfigFile(t, "provider:\n  timeout_sec: 0\n")

	_, err := LoadConfig(configPath)
	if !errors.Is(err, ErrInvalidTimeout) {
		t.Fatalf("Expected ErrInvalidTimeout, got %v", err)
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config is invalid: %v", err)
	}

	if !cfg.Features.StrictValidation {
		t.Error("Expected strict validation by default")
	}

	if cfg.Provider.GetTimeout() != 10*time.Second {
		t.Errorf("Expected default timeout 10s, got %v", cfg.Provider.GetTimeout())
	}
}

func TestConfig_Validate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"Missing base URL", func(c *Config) { c.Provider.BaseURL = "" }, ErrMissingBaseURL},
		{"Relative base URL", func(c *Config) { c.Provider.BaseURL = "newsapi.org" }, ErrInvalidBaseURL},
		{"Missing country", func(c *Config) { c.Provider.Country = "" }, ErrMissingCountry},
		{"Zero timeout", func(c *Config) { c.Provider.TimeoutSec = 0 }, ErrInvalidTimeout},
		{"Missing snapshot", func(c *Config) { c.Output.Snapshot = "" }, ErrMissingSnapshotPath},
		{"Missing CSV", func(c *Config) { c.Output.CSV = "" }, ErrMissingCSVPath},
		{"Missing Excel", func(c *Config) { c.Output.Excel = "" }, ErrMissingExcelPath},
		{"Long sheet name", func(c *Config) { c.Output.Sheet = strings.Repeat("x", 32) }, ErrInvalidSheetName},
		{"Sheet name with colon", func(c *Config) { c.Output.Sheet = "News: today" }, ErrInvalidSheetName},
		{"Quoted sheet name", func(c *Config) { c.Output.Sheet = "'News'" }, ErrInvalidSheetName},
		{"Missing log file", func(c *Config) { c.Logging.File = "" }, ErrMissingLogFile},
		{"Bad log level", func(c *Config) { c.Logging.Level = "verbose" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_SheetNames(t *testing.T) {
	for _, name := range []string{"", "News", "Headlines 2024", strings.Repeat("x", 31), strings.Repeat("新", 31), "Bob's news"} {
		cfg := Default()
		cfg.Output.Sheet = name

		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() rejected sheet %q: %v", name, err)
		}
	}
}

func TestOutputConfig_Resolve(t *testing.T) {
	out := OutputConfig{Dir: "/var/news"}

	if got := out.Resolve("news.csv"); got != filepath.Join("/var/news", "news.csv") {
		t.Errorf("Resolve relative = %s", got)
	}

	if got := out.Resolve("/abs/news.csv"); got != "/abs/news.csv" {
		t.Errorf("Resolve absolute = %s", got)
	}

	empty := OutputConfig{}
	if got := empty.Resolve("news.csv"); got != "news.csv" {
		t.Errorf("Resolve without dir = %s", got)
	}
}

func TestConfig_LoadAPIKey(t *testing.T) {
	cfg := Default()
	cfg.Provider.APIKey = "from-file"

	t.Setenv(APIKeyEnv, "")

	if got := cfg.LoadAPIKey(); got != "from-file" {
		t.Errorf("Expected config key fallback, got %q", got)
	}

	t.Setenv(APIKeyEnv, "from-env")

	if got := cfg.LoadAPIKey(); got != "from-env" {
		t.Errorf("Expected environment key, got %q", got)
	}
}

func TestConfig_SaveConfig_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Provider.Country = "de"

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := cfg.SaveConfig(path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Provider.Country != "de" {
		t.Errorf("Expected country 'de', got '%s'", loaded.Provider.Country)
	}
}
