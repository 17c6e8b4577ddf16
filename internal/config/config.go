// Package config handles global cmdlint configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/cmdlint/internal/rules"
)

// Config represents the global cmdlint configuration.
type Config struct {
	// Models extends the built-in model allow-list.
	Models []string `toml:"models"`

	// ReplaceModels drops the built-in model list instead of extending it.
	ReplaceModels bool `toml:"replace_models"`

	// Tools holds extra tool-name patterns (anchored regular expressions)
	// accepted in allowed-tools.
	Tools []string `toml:"tools"`

	// Description bounds the description-length warnings.
	Description DescriptionConfig `toml:"description"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// DescriptionConfig bounds the description length checks. Zero values
// fall back to the built-in thresholds.
type DescriptionConfig struct {
	MinLength int `toml:"min_length"`
	MaxLength int `toml:"max_length"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// RuleOptions converts the configuration into rule options layered over
// the defaults.
func (c *Config) RuleOptions() (*rules.Options, error) {
	opts := rules.DefaultOptions()

	if c.ReplaceModels {
		opts.Models = make(map[string]bool)
	}
	for _, m := range c.Models {
		opts.Models[m] = true
	}

	for _, pattern := range c.Tools {
		if err := opts.AddToolPattern(pattern); err != nil {
			return nil, fmt.Errorf("invalid tool pattern %q: %w", pattern, err)
		}
	}

	if c.Description.MinLength > 0 {
		opts.DescriptionMin = c.Description.MinLength
	}
	if c.Description.MaxLength > 0 {
		opts.DescriptionMax = c.Description.MaxLength
	}

	return opts, nil
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/cmdlint/config.toml first (XDG style),
// then falls back to the OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "cmdlint", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "cmdlint", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}
