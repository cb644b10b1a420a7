// Package config owns the data directory layout, the optional config.toml
// overrides, and the set of acceptable category labels.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds application settings. Values come from defaults, overridden
// by config.toml in the data directory when present.
type Config struct {
	DataDir       string `toml:"data_dir"`
	DefaultFormat string `toml:"default_format"`
}

// Load resolves the data directory (TASKTIMER_HOME, else ~/.tasktimer),
// creates it if needed, and applies config.toml overrides.
func Load() (*Config, error) {
	dir := os.Getenv("TASKTIMER_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		dir = filepath.Join(home, ".tasktimer")
	}

	cfg := &Config{
		DataDir:       dir,
		DefaultFormat: "text",
	}

	cfgPath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return cfg, nil
}
