// Package config loads editor settings from a TOML file and the
// environment.
//
// Settings are resolved in order: built-in defaults, then the config
// file, then KILN_* environment variables. Later sources win.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all editor settings.
type Config struct {
	Log LogConfig `toml:"log"`
}

// LogConfig controls diagnostic logging. The screen belongs to the
// editor, so logs only ever go to a file; an empty File disables
// logging entirely.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the built-in settings: logging disabled, info level.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/kiln/config.toml or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "kiln", "config.toml"), nil
}

// Load reads the config file at path, which must exist, and applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadDefault reads the config from the default location if present
// and applies environment overrides. A missing file is not an error.
func LoadDefault() (Config, error) {
	cfg := Default()

	path, err := DefaultPath()
	if err != nil {
		cfg.applyEnv()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays KILN_* environment variables. A set-but-empty
// variable counts as a value, matching os.LookupEnv semantics.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("KILN_LOG_FILE"); ok {
		c.Log.File = v
	}
	if v, ok := os.LookupEnv("KILN_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
}
