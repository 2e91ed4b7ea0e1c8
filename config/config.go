// Package config handles chafa.toml symbol-selection configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents a chafa.toml configuration file.
type Config struct {
	Symbols Symbols `toml:"symbols"`

	// Dir is the directory containing the chafa.toml file (set at load time).
	Dir string `toml:"-"`
}

// Symbols configures the default symbol selector and named selector
// presets. A preset maps a short name to selector text, so a CLI flag
// value like "ascii-art" expands to a full selector expression.
type Symbols struct {
	Selectors string            `toml:"selectors"`
	Presets   map[string]string `toml:"presets"`
}

// Load parses a chafa.toml file from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, "chafa.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	return &c, nil
}

// FindAndLoad walks up from startDir to find a chafa.toml file, then
// loads and returns the configuration. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "chafa.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// Resolve turns a CLI flag value into selector text. A value naming a
// configured preset resolves to that preset's selector text; any other
// non-empty value is taken to be selector text already. An empty value
// resolves to the configured default selector, or "" when nothing is
// configured. Resolve is safe to call on a nil Config.
func (c *Config) Resolve(flagValue string) string {
	if c == nil {
		return flagValue
	}
	if flagValue == "" {
		return c.Symbols.Selectors
	}
	if text, ok := c.Symbols.Presets[flagValue]; ok {
		return text
	}
	return flagValue
}
