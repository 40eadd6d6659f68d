// Package config provides configuration management for the sales calculator.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrNoProductAliases       = errors.New("aliases.product must list at least one key")
	ErrNoQuantityAliases      = errors.New("aliases.quantity must list at least one key")
	ErrNoCatalogueNameAliases = errors.New("aliases.catalogue_name must list at least one key")
	ErrNoPriceAliases         = errors.New("aliases.price must list at least one key")
	ErrEmptyAlias             = errors.New("alias keys must be non-empty")
	ErrMissingResultsPath     = errors.New("output.results_path is required")
	ErrInvalidLogLevel        = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete calculator configuration.
type Config struct {
	Aliases AliasConfig   `yaml:"aliases"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// AliasConfig lists the accepted key names per logical field, in priority
// order. The first matching key present in a record wins.
type AliasConfig struct {
	Product       []string `yaml:"product"`
	Quantity      []string `yaml:"quantity"`
	CatalogueName []string `yaml:"catalogue_name"`
	Price         []string `yaml:"price"`
}

// OutputConfig defines where the results report is written.
type OutputConfig struct {
	ResultsPath string `yaml:"results_path"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration used when no config file is
// supplied.
func Default() *Config {
	return &Config{
		Aliases: AliasConfig{
			Product:       []string{"product", "name", "item", "sku"},
			Quantity:      []string{"quantity", "qty", "amount", "units"},
			CatalogueName: []string{"product", "name", "title", "id", "sku"},
			Price:         []string{"price", "cost", "value"},
		},
		Output: OutputConfig{
			ResultsPath: "SalesResults.txt",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML configuration file layered over the defaults.
func Load(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	aliasLists := []struct {
		name string
		keys []string
		err  error
	}{
		{"aliases.product", c.Aliases.Product, ErrNoProductAliases},
		{"aliases.quantity", c.Aliases.Quantity, ErrNoQuantityAliases},
		{"aliases.catalogue_name", c.Aliases.CatalogueName, ErrNoCatalogueNameAliases},
		{"aliases.price", c.Aliases.Price, ErrNoPriceAliases},
	}

	for _, list := range aliasLists {
		if len(list.keys) == 0 {
			return list.err
		}

		for i, key := range list.keys {
			if key == "" {
				return fmt.Errorf("%w: %s[%d]", ErrEmptyAlias, list.name, i)
			}
		}
	}

	if c.Output.ResultsPath == "" {
		return ErrMissingResultsPath
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{ProductAliases: %d, QuantityAliases: %d, Results: %s}",
		len(c.Aliases.Product),
		len(c.Aliases.Quantity),
		c.Output.ResultsPath,
	)
}
