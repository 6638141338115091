// SPDX-License-Identifier: MIT

// Package config holds the energyflow CLI configuration, stored as TOML in
// the XDG config directory.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/energyflow/category"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config holds energyflow configuration.
type Config struct {
	Log    LogConfig    `toml:"log"`
	UI     UIConfig     `toml:"ui"`
	Output OutputConfig `toml:"output"`
	Engine EngineConfig `toml:"engine"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Format string `toml:"format"` // "text", "json"
}

// UIConfig controls display options.
type UIConfig struct {
	Color bool `toml:"color"`
}

// OutputConfig controls command output.
type OutputConfig struct {
	Format string `toml:"format"` // "table", "json", "yaml"
}

// EngineConfig holds rebuild defaults.
type EngineConfig struct {
	Category        string `toml:"category"`
	InferCategories bool   `toml:"infer_categories"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "warn", Format: "text"},
		UI:     UIConfig{Color: true},
		Output: OutputConfig{Format: FormatTable},
		Engine: EngineConfig{Category: "all", InferCategories: true},
	}
}

// ConfigDir returns the energyflow config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "energyflow")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file over the defaults. A missing file yields the
// defaults; a malformed or invalid one is an error.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Validate reports the first value outside its allowed set.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	switch strings.ToLower(c.Output.Format) {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalid, c.Output.Format)
	}
	if _, err := c.Category(); err != nil {
		return err
	}

	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}

	return lvl, nil
}

// Category parses Engine.Category.
func (c *Config) Category() (category.Category, error) {
	cat, err := category.Parse(c.Engine.Category)
	if err != nil {
		return category.All, fmt.Errorf("%w: engine.category: %w", ErrInvalid, err)
	}

	return cat, nil
}
