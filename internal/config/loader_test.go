package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	// Point the default path into an empty home so no real config leaks in.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"/usr/bin", "/usr/local/bin"}, cfg.Scan.Dirs)
	assert.Equal(t, "/var/log/pymanager", cfg.Store.Dir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `scan:
  dirs:
    - /opt/python/bin
store:
  dir: /tmp/pymanager-test
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/opt/python/bin"}, cfg.Scan.Dirs)
	assert.Equal(t, "/tmp/pymanager-test", cfg.Store.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `store:
  dir: /from/file
`)

	t.Setenv("PYMANAGER_STORE_DIR", "/from/env")
	t.Setenv("PYMANAGER_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.Store.Dir)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadScanDirsFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PYMANAGER_SCAN_DIRS", "/a/bin, /b/bin,")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"/a/bin", "/b/bin"}, cfg.Scan.Dirs)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/var/log/pymanager", cfg.Store.Dir)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "store: [not: valid: yaml")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadInvalidLoggingConfig(t *testing.T) {
	path := writeConfig(t, `logging:
  level: loud
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"no scan dirs", func(c *Config) { c.Scan.Dirs = nil }, true},
		{"empty scan dir entry", func(c *Config) { c.Scan.Dirs = []string{""} }, true},
		{"no store dir", func(c *Config) { c.Store.Dir = "" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			applyDefaults(cfg)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
