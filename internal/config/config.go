package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const configFile = ".menu/config.json"

// DefaultVisibleCount is used when the config does not set a window size.
const DefaultVisibleCount = 5

// Config holds the menu settings shared by the demo and replay commands.
type Config struct {
	VisibleCount       int      `json:"visible_count,omitempty"`
	SeparateSelections bool     `json:"separate_selections,omitempty"`
	Items              []string `json:"items,omitempty"`
}

// Path returns the config file location under baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Load reads the config from disk. A missing file yields the defaults.
func Load(baseDir string) (*Config, error) {
	data, err := os.ReadFile(Path(baseDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{VisibleCount: DefaultVisibleCount}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}
	if cfg.VisibleCount <= 0 {
		cfg.VisibleCount = DefaultVisibleCount
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := Path(baseDir)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
