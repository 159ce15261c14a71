// Package config loads CLI configuration for skillgraph. Defaults are
// overlaid by an optional YAML file and then by environment variables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the config file searched when none is given.
const DefaultConfigPath = "skillgraph.yaml"

// Config holds CLI settings.
type Config struct {
	// TaxonomyPath is the taxonomy document to load.
	TaxonomyPath string `yaml:"taxonomy_path"`

	// SearchLimit is the default result cap for search commands.
	SearchLimit int `yaml:"search_limit"`

	// RankedSearch enables the full-text index for search by default.
	RankedSearch bool `yaml:"ranked_search"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		TaxonomyPath: "taxonomy.json",
		SearchLimit:  10,
		RankedSearch: false,
		LogLevel:     "info",
	}
}

// Load builds the config: defaults, then the YAML file at path (missing
// files are fine when path is the default location), then environment
// overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if path != DefaultConfigPath {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	case err != nil:
		return nil, fmt.Errorf("config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	applyEnvironment(cfg)
	return cfg, nil
}

func applyEnvironment(cfg *Config) {
	if v := os.Getenv("SKILLGRAPH_TAXONOMY"); v != "" {
		cfg.TaxonomyPath = v
	}
	if v := os.Getenv("SKILLGRAPH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
