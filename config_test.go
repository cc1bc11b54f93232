package klog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig verifies the documented defaults
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "klog", cfg.Name)
	assert.Equal(t, "", cfg.Directory)
	assert.Equal(t, "txt", cfg.Extension)
	assert.EqualValues(t, 100000, cfg.MaxLines)
	assert.True(t, cfg.EnableFile)
	assert.True(t, cfg.EnableConsole)
	assert.True(t, cfg.EnableColor)
	assert.EqualValues(t, 100, cfg.FlushIntervalMs)
	assert.False(t, cfg.InternalErrorsToStderr)
}

// TestDefaultConfigIsCopy verifies callers cannot mutate the shared defaults
func TestDefaultConfigIsCopy(t *testing.T) {
	first := DefaultConfig()
	first.Name = "mutated"

	assert.Equal(t, "klog", DefaultConfig().Name)
}

// TestConfigValidate exercises the validation rules
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"empty name", func(c *Config) { c.Name = "" }, true},
		{"whitespace name", func(c *Config) { c.Name = "  " }, true},
		{"dotted extension", func(c *Config) { c.Extension = ".txt" }, true},
		{"zero max lines", func(c *Config) { c.MaxLines = 0 }, true},
		{"negative max lines", func(c *Config) { c.MaxLines = -1 }, true},
		{"negative flush interval", func(c *Config) { c.FlushIntervalMs = -1 }, true},
		{"zero flush interval ok", func(c *Config) { c.FlushIntervalMs = 0 }, false},
		{"empty extension ok", func(c *Config) { c.Extension = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
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

// TestConfigClone verifies Clone produces an independent copy
func TestConfigClone(t *testing.T) {
	orig := DefaultConfig()
	orig.Directory = "/var/log/app"

	clone := orig.Clone()
	clone.Directory = "/tmp"
	clone.MaxLines = 5

	assert.Equal(t, "/var/log/app", orig.Directory)
	assert.EqualValues(t, 100000, orig.MaxLines)
}

// TestNewConfigFromFile verifies TOML loading overrides only present keys
func TestNewConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "klog.toml")

	content := `[klog]
name = "applog"
directory = "/var/log/app"
max_lines = 5000
enable_color = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "applog", cfg.Name)
	assert.Equal(t, "/var/log/app", cfg.Directory)
	assert.EqualValues(t, 5000, cfg.MaxLines)
	assert.False(t, cfg.EnableColor)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, "txt", cfg.Extension)
	assert.True(t, cfg.EnableFile)
	assert.EqualValues(t, 100, cfg.FlushIntervalMs)
}

// TestNewConfigFromFileMissing verifies a missing file yields the defaults
func TestNewConfigFromFileMissing(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "nonexistent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// TestNewConfigFromFileInvalidValues verifies validation runs on loaded files
func TestNewConfigFromFileInvalidValues(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "klog.toml")

	content := `[klog]
max_lines = -10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := NewConfigFromFile(path)
	assert.Error(t, err)
}

// TestNewConfigFromFileMalformed verifies broken TOML is reported
func TestNewConfigFromFileMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "klog.toml")

	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0644))

	_, err := NewConfigFromFile(path)
	assert.Error(t, err)
}
