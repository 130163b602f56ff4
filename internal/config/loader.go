package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/revego/pymanager/internal/logging"
)

// envPrefix is stripped from environment variables before mapping.
const envPrefix = "PYMANAGER_"

// Load loads configuration from a YAML file, then overrides with
// environment variables.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (PYMANAGER_STORE_DIR, PYMANAGER_LOGGING_LEVEL, ...)
//  2. YAML config file (~/.config/pymanager/config.yaml)
//  3. Hardcoded defaults
//
// The configPath parameter specifies the YAML file to load. If empty, the
// default path is used. A missing file is not an error; defaults apply.
//
// Environment variables use an underscore separator and map to YAML field
// names by splitting on the first underscore after the prefix:
//
//	PYMANAGER_STORE_DIR      -> store.dir
//	PYMANAGER_LOGGING_LEVEL  -> logging.level
//	PYMANAGER_LOGGING_FORMAT -> logging.format
//
// PYMANAGER_SCAN_DIRS is handled separately as a comma-separated list,
// because the env provider carries scalar values only.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".config", "pymanager", "config.yaml")
	}

	// Load from YAML file if it exists
	if _, err := os.Stat(configPath); err == nil {
		content, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Override with environment variables
	if err := k.Load(env.Provider(envPrefix, ".", transformEnv), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// PYMANAGER_SCAN_DIRS is a comma-separated list
	if dirs := os.Getenv(envPrefix + "SCAN_DIRS"); dirs != "" {
		cfg.Scan.Dirs = splitDirs(dirs)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// transformEnv maps environment variable names to config keys.
// The prefix is already stripped by the provider. Splitting on the first
// underscore yields the section.field pattern:
//
//	STORE_DIR     -> store.dir
//	LOGGING_LEVEL -> logging.level
//
// SCAN_DIRS is skipped here; Load handles it as a list.
func transformEnv(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if lower == "scan_dirs" {
		return ""
	}

	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}
	return parts[0] + "." + parts[1]
}

// splitDirs splits a comma-separated directory list, dropping empty entries.
func splitDirs(s string) []string {
	var dirs []string
	for _, d := range strings.Split(s, ",") {
		d = strings.TrimSpace(d)
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if len(cfg.Scan.Dirs) == 0 {
		cfg.Scan.Dirs = []string{"/usr/bin", "/usr/local/bin"}
	}
	if cfg.Store.Dir == "" {
		cfg.Store.Dir = "/var/log/pymanager"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = logging.NewDefaultConfig().Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = logging.NewDefaultConfig().Format
	}
}
