// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"labscan/internal/detector"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format           string `yaml:"format"`
		ConfidenceLevels string `yaml:"confidence_levels"`
		Strategies       string `yaml:"strategies"`
		Verbose          bool   `yaml:"verbose"`
		Debug            bool   `yaml:"debug"`
		NoColor          bool   `yaml:"no_color"`
		Diagnose         bool   `yaml:"diagnose"`
	} `yaml:"defaults"`

	// Extraction engine tuning
	Extraction struct {
		AcceptanceThreshold  float64 `yaml:"acceptance_threshold"`
		ContextWindow        int     `yaml:"context_window"`
		NarrativeTokenWindow int     `yaml:"narrative_token_window"`
		PositionalTolerance  int     `yaml:"positional_tolerance"`
		MaxScanLength        int     `yaml:"max_scan_length"`
	} `yaml:"extraction"`

	// Profiles for different extraction scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents an extraction profile with specific settings
type Profile struct {
	Format           string `yaml:"format"`
	ConfidenceLevels string `yaml:"confidence_levels"`
	Strategies       string `yaml:"strategies"`
	Verbose          bool   `yaml:"verbose"`
	Debug            bool   `yaml:"debug"`
	NoColor          bool   `yaml:"no_color"`
	Diagnose         bool   `yaml:"diagnose"`
	Description      string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.ConfidenceLevels = "all"
	config.Defaults.Strategies = "all"

	def := detector.DefaultConfig()
	config.Extraction.AcceptanceThreshold = def.AcceptanceThreshold
	config.Extraction.ContextWindow = def.ContextWindow
	config.Extraction.NarrativeTokenWindow = def.NarrativeTokenWindow
	config.Extraction.PositionalTolerance = def.PositionalTolerance
	config.Extraction.MaxScanLength = def.MaxScanLength

	// Add default pipeline profile for machine-readable batch runs
	config.Profiles["pipeline"] = Profile{
		Format:           "json",
		ConfidenceLevels: "all",
		Strategies:       "all",
		NoColor:          true,
		Diagnose:         true,
		Description:      "Machine-readable output with diagnostics for batch pipelines",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	// Read config file
	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Validate the configuration
	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	for _, name := range []string{"config.yaml", "labscan.yaml", "labscan.yml", ".labscan.yaml", ".labscan.yml"} {
		if fileExists(name) {
			return name
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	// Check legacy location in home directory
	homeConfig := filepath.Join(home, ".labscan.yaml")
	if fileExists(homeConfig) {
		return homeConfig
	}

	// Check XDG config directory
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join(xdgConfig, "labscan", name)
		if fileExists(candidate) {
			return candidate
		}
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns a list of available profile names
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// DetectorConfig maps the extraction section onto the engine configuration.
// Zero values fall back to the engine defaults so a partial config file
// never produces a degenerate engine.
func (c *Config) DetectorConfig() detector.Config {
	cfg := detector.DefaultConfig()
	if c.Extraction.AcceptanceThreshold > 0 {
		cfg.AcceptanceThreshold = c.Extraction.AcceptanceThreshold
	}
	if c.Extraction.ContextWindow > 0 {
		cfg.ContextWindow = c.Extraction.ContextWindow
	}
	if c.Extraction.NarrativeTokenWindow > 0 {
		cfg.NarrativeTokenWindow = c.Extraction.NarrativeTokenWindow
	}
	if c.Extraction.PositionalTolerance > 0 {
		cfg.PositionalTolerance = c.Extraction.PositionalTolerance
	}
	if c.Extraction.MaxScanLength > 0 {
		cfg.MaxScanLength = c.Extraction.MaxScanLength
	}
	return cfg
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if t := config.Extraction.AcceptanceThreshold; t < 0 || t > 1 {
		return fmt.Errorf("acceptance_threshold must be between 0 and 1, got %v", t)
	}
	if w := config.Extraction.ContextWindow; w < 0 {
		return fmt.Errorf("context_window cannot be negative, got %d", w)
	}
	if w := config.Extraction.NarrativeTokenWindow; w < 0 {
		return fmt.Errorf("narrative_token_window cannot be negative, got %d", w)
	}
	if tol := config.Extraction.PositionalTolerance; tol < 0 {
		return fmt.Errorf("positional_tolerance cannot be negative, got %d", tol)
	}

	return nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns a default configuration.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// A missing or bad config file falls back to defaults.
		cfg, _ = LoadConfig("")
	}
	return cfg
}
