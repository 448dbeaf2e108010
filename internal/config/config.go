package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/oaktree-lab/shytrace/internal/shytrace"
)

// Environment overrides.
const (
	EnvNewline = "SHYTRACE_NEWLINE"
	EnvColor   = "SHYTRACE_COLOR"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// UserConfig represents CLI configuration
type UserConfig struct {
	// Newline is the output terminator name: auto, lf, crlf or cr.
	Newline string `json:"newline"`
	// Color selects frame highlighting: auto, always or never.
	Color string `json:"color"`
	// ShowPrefix prints the stripped prefix to stderr.
	ShowPrefix    bool   `json:"show_prefix"`
	LogLevel      string `json:"log_level"`
	ConfigVersion string `json:"config_version"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	c := &UserConfig{
		Newline:       "auto",
		Color:         ColorAuto,
		ShowPrefix:    false,
		LogLevel:      "info",
		ConfigVersion: "1.0",
	}
	c.applyEnv()
	return c
}

// applyEnv overrides fields from the environment
func (c *UserConfig) applyEnv() {
	if v := os.Getenv(EnvNewline); v != "" {
		c.Newline = strings.ToLower(v)
	}
	if v := os.Getenv(EnvColor); v != "" {
		c.Color = strings.ToLower(v)
	}
}

// Load loads the configuration from disk, or returns default if not found
func Load() (*UserConfig, error) {
	configFile := GetConfigFile()

	// Return default config if file doesn't exist
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	// Start from defaults so missing keys keep their default value
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// Environment always wins over the file
	config.applyEnv()

	return config, nil
}

// Save saves the configuration to disk with atomic write
func (c *UserConfig) Save() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configFile := GetConfigFile()

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	// Write to temporary file first (atomic write pattern)
	tempFile := configFile + ".tmp"
	if err := os.WriteFile(tempFile, data, 0600); err != nil {
		return err
	}

	if err := os.Rename(tempFile, configFile); err != nil {
		os.Remove(tempFile) // Clean up temp file on error
		return err
	}

	return nil
}

// Validate validates the configuration
func (c *UserConfig) Validate() error {
	if _, err := shytrace.ParseNewline(c.Newline); err != nil {
		return err
	}

	validColors := map[string]bool{
		ColorAuto:   true,
		ColorAlways: true,
		ColorNever:  true,
	}
	if !validColors[c.Color] {
		return fmt.Errorf("unknown color mode %q (valid: auto, always, never)", c.Color)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	return nil
}

// Terminator returns the line terminator selected by Newline.
func (c *UserConfig) Terminator() string {
	nl, err := shytrace.ParseNewline(c.Newline)
	if err != nil {
		return shytrace.DefaultNewline
	}
	return nl
}
