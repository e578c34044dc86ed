// Package config loads the process configuration: the paths of the
// dictionary and fallback lexicon tables, the rarity threshold, and
// whether the fallback lexicon is consulted at all.
//
// A Config is built once at process start, either from defaults or from
// a YAML file via Load, and is never mutated afterwards.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/dict"
)

// Config holds the knobs of the word decomposition engine that a
// deployment may want to override without recompiling.
type Config struct {
	// DictPath, if non-empty, names a TSV file to load in place of the
	// embedded seed dictionary.
	DictPath string `yaml:"dict_path"`

	// FallbackPath, if non-empty, names a PEJVO-style lexicon file to
	// load in place of the embedded seed lexicon.
	FallbackPath string `yaml:"fallback_path"`

	// FallbackEnabled controls whether the fallback lexicon is consulted
	// after the compound splitter fails. Disabling it is required to
	// observe the monotonicity property of spec §8 item 7.
	FallbackEnabled bool `yaml:"fallback_enabled"`

	// RarityThreshold (τ) is the rarity value the compound splitter's
	// first pass admits without requiring that no lower-rarity analysis
	// exists. When that pass fails and τ is below dict.MaxRarity, a second
	// pass retries at dict.MaxRarity.
	RarityThreshold int `yaml:"rarity_threshold"`

	// MinRootLen is the shortest candidate the compound splitter will try
	// at any position: raising it excludes shorter dictionary entries from
	// every compound analysis. ending.Strip gives no ending to a word of
	// fewer than MinRootLen+1 runes.
	MinRootLen int `yaml:"min_root_len"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the verbosity of load-time diagnostics.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level"`
}

// Default returns the zero-config values: embedded dictionary and
// fallback lexicon, fallback enabled, τ=dict.DefaultRarityThreshold.
func Default() *Config {
	return &Config{
		DictPath:        "",
		FallbackPath:    "",
		FallbackEnabled: true,
		RarityThreshold: dict.DefaultRarityThreshold,
		MinRootLen:      2,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file at path. Unknown keys are
// ignored. Any field absent from the file keeps its Default value.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	mergeWithDefaults(cfg)
	return cfg, nil
}

// mergeWithDefaults replaces zero values of RarityThreshold, MinRootLen
// and Logging.Level with their defaults. Load starts from Default(), so a
// field absent from the YAML document already holds its default; what
// this changes is a field the file sets to 0 or "" explicitly, so
// rarity_threshold: 0 in a file ends up as the default threshold.
func mergeWithDefaults(cfg *Config) {
	defaults := Default()
	if cfg.RarityThreshold == 0 {
		cfg.RarityThreshold = defaults.RarityThreshold
	}
	if cfg.MinRootLen == 0 {
		cfg.MinRootLen = defaults.MinRootLen
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.RarityThreshold < 0 || c.RarityThreshold > dict.MaxRarity {
		return fmt.Errorf("rarity_threshold must be between 0 and %d", dict.MaxRarity)
	}
	if c.MinRootLen < 1 {
		return fmt.Errorf("min_root_len must be positive")
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}
	if c.DictPath != "" {
		if _, err := os.Stat(c.DictPath); os.IsNotExist(err) {
			return fmt.Errorf("dict_path does not exist: %s", c.DictPath)
		}
	}
	if c.FallbackPath != "" {
		if _, err := os.Stat(c.FallbackPath); os.IsNotExist(err) {
			return fmt.Errorf("fallback_path does not exist: %s", c.FallbackPath)
		}
	}
	return nil
}
