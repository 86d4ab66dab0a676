// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the tracker.
//
// Configuration is loaded from a single file specified by:
//   - BETTRACKER_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There is no discovery walk over dotfile locations. When neither is
// set the built-in defaults apply, which point at a local backend.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config path.
const EnvVar = "BETTRACKER_CONFIG"

// Config is the tracker configuration.
type Config struct {
	// Backend configures the REST API connection.
	Backend BackendConfig `yaml:"backend"`

	// Import configures the screenshot import flow.
	Import ImportConfig `yaml:"import"`

	// Log configures diagnostic logging.
	Log LogConfig `yaml:"log"`
}

// BackendConfig configures the REST API connection.
type BackendConfig struct {
	// BaseURL is the backend address including the API prefix.
	// Default: http://127.0.0.1:8000/api
	BaseURL string `yaml:"base_url"`
}

// ImportConfig configures the screenshot import flow.
type ImportConfig struct {
	// DefaultBookmaker preselects the OCR layout profile hint.
	// Empty means auto-detect. Known values: tipsport, betano.
	DefaultBookmaker string `yaml:"default_bookmaker"`

	// ScreenshotDir is the directory the file picker starts in.
	// Supports ${HOME} expansion. Default: the home directory.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// File receives JSON log lines in addition to the in-UI log.
	// Empty disables file logging. Supports ${HOME} expansion.
	File string `yaml:"file"`

	// Level is the minimum level: debug, info, warn, error.
	// Default: info.
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL: "http://127.0.0.1:8000/api",
		},
		Import: ImportConfig{
			ScreenshotDir: "${HOME}",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the BETTRACKER_CONFIG environment
// variable, falling back to [Default] when it is not set.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		cfg := Default()
		cfg.expandVariables()
		return cfg, cfg.Validate()
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. The file is
// merged over the defaults; environment variables do not override
// config values. The only expansion performed is ${HOME} and similar
// variables in paths.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg.expandVariables()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// expandVariables expands ${HOME} and similar variables in path
// fields for portability.
func (c *Config) expandVariables() {
	c.Import.ScreenshotDir = os.ExpandEnv(c.Import.ScreenshotDir)
	c.Log.File = os.ExpandEnv(c.Log.File)
}

// Validate checks field values. Called by the loaders; exported for
// callers that build a Config programmatically.
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.Backend.BaseURL)
	if err != nil || parsed.Scheme != "http" && parsed.Scheme != "https" || parsed.Host == "" {
		return fmt.Errorf("backend.base_url %q is not an http(s) URL", c.Backend.BaseURL)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}

	switch c.Import.DefaultBookmaker {
	case "", "tipsport", "betano":
	default:
		return fmt.Errorf("import.default_bookmaker %q is not one of tipsport, betano", c.Import.DefaultBookmaker)
	}

	return nil
}
