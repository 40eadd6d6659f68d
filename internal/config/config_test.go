package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
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

// validConfigYAML overrides a few fields and leaves the rest to defaults.
const validConfigYAML = `
aliases:
  product: ["producto", "articulo"]
  quantity: ["cantidad"]
output:
  results_path: "out/Results.txt"
logging:
  level: "debug"
`

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config is invalid: %v", err)
	}

	if cfg.Output.ResultsPath != "SalesResults.txt" {
		t.Errorf("ResultsPath = %q, want SalesResults.txt", cfg.Output.ResultsPath)
	}

	if len(cfg.Aliases.Product) != 4 || cfg.Aliases.Product[0] != "product" {
		t.Errorf("Unexpected product aliases: %v", cfg.Aliases.Product)
	}

	if len(cfg.Aliases.CatalogueName) != 5 || cfg.Aliases.CatalogueName[2] != "title" {
		t.Errorf("Unexpected catalogue name aliases: %v", cfg.Aliases.CatalogueName)
	}
}

func TestLoadConfig_Valid(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Aliases.Product) != 2 || cfg.Aliases.Product[0] != "producto" {
		t.Errorf("Unexpected product aliases: %v", cfg.Aliases.Product)
	}

	if cfg.Output.ResultsPath != "out/Results.txt" {
		t.Errorf("ResultsPath = %q, want out/Results.txt", cfg.Output.ResultsPath)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}

	// Untouched sections keep the defaults.
	if len(cfg.Aliases.Price) != 3 {
		t.Errorf("Expected default price aliases, got %v", cfg.Aliases.Price)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load expected error for missing file")
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := createTempConfigFile(t, "aliases: [broken")

	if _, err := Load(path); err == nil {
		t.Error("Load expected error for malformed YAML")
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr error
	}{
		{
			name:    "No product aliases",
			mutate:  func(cfg *Config) { cfg.Aliases.Product = nil },
			wantErr: ErrNoProductAliases,
		},
		{
			name:    "No quantity aliases",
			mutate:  func(cfg *Config) { cfg.Aliases.Quantity = []string{} },
			wantErr: ErrNoQuantityAliases,
		},
		{
			name:    "No catalogue name aliases",
			mutate:  func(cfg *Config) { cfg.Aliases.CatalogueName = nil },
			wantErr: ErrNoCatalogueNameAliases,
		},
		{
			name:    "No price aliases",
			mutate:  func(cfg *Config) { cfg.Aliases.Price = nil },
			wantErr: ErrNoPriceAliases,
		},
		{
			name:    "Empty alias key",
			mutate:  func(cfg *Config) { cfg.Aliases.Quantity = []string{"qty", ""} },
			wantErr: ErrEmptyAlias,
		},
		{
			name:    "Missing results path",
			mutate:  func(cfg *Config) { cfg.Output.ResultsPath = "" },
			wantErr: ErrMissingResultsPath,
		},
		{
			name:    "Invalid log level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate expected error but got nil")
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
