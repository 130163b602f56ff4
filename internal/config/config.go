// Package config provides configuration loading for pymanager.
package config

import (
	"fmt"

	"github.com/revego/pymanager/internal/logging"
)

// Config is the root configuration for pymanager.
type Config struct {
	Scan    ScanConfig     `koanf:"scan"`
	Store   StoreConfig    `koanf:"store"`
	Logging logging.Config `koanf:"logging"`
}

// ScanConfig controls where interpreter binaries are discovered.
type ScanConfig struct {
	// Dirs are the directories scanned for python executables.
	// Only direct entries are inspected, never subdirectories.
	Dirs []string `koanf:"dirs"`
}

// StoreConfig controls where project logs are persisted.
type StoreConfig struct {
	// Dir is the base directory holding one JSON file per version.
	Dir string `koanf:"dir"`
}

// Validate checks configuration for errors.
func (c *Config) Validate() error {
	if len(c.Scan.Dirs) == 0 {
		return fmt.Errorf("scan.dirs cannot be empty")
	}
	for _, dir := range c.Scan.Dirs {
		if dir == "" {
			return fmt.Errorf("scan.dirs cannot contain empty entries")
		}
	}
	if c.Store.Dir == "" {
		return fmt.Errorf("store.dir cannot be empty")
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
