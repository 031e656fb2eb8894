package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// run from an empty directory so no carbontrace.yaml is picked up
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1200, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, 0, cfg.Trace.Red)
	assert.Equal(t, 10.0, cfg.Trace.TolerancePercent)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carbontrace.yaml")
	content := []byte("log_level: debug\nwindow:\n  width: 900\ntrace:\n  red: 200\n  tolerance_percent: 2.5\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 900, cfg.Window.Width)
	// unset keys keep their defaults
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, 200, cfg.Trace.Red)
	assert.Equal(t, 2.5, cfg.Trace.TolerancePercent)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
