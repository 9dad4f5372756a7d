// Package config loads tool configuration from JSON with CLI overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and crop settings.
type Config struct {
	// Paths
	AssetDir  string `json:"asset_dir"`
	OutputDir string `json:"output_dir"`

	// Crop settings
	Workers int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.AssetDir != "" {
		c.AssetDir = flags.AssetDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.AssetDir == "" {
		c.AssetDir = "assets"
	}
	if c.OutputDir == "" {
		c.OutputDir = "crops"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	AssetDir  string
	OutputDir string
	Workers   int
}
