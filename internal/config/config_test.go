package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.hcl"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
simulation {
  trials         = 50000
  workers        = 4
  complete_board = true
}

log {
  level = "debug"
  file  = "custom.log"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50000, cfg.Simulation.Trials)
	assert.Equal(t, 4, cfg.Simulation.Workers)
	assert.True(t, cfg.Simulation.CompleteBoard)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "custom.log", cfg.Log.File)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
simulation {
  workers = 2
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Simulation.Workers)
	assert.Equal(t, Default().Simulation.Trials, cfg.Simulation.Trials)
	assert.Equal(t, Default().Log.Level, cfg.Log.Level)
	assert.Equal(t, Default().Log.File, cfg.Log.File)
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeConfig(t, `simulation { trials = `)

	_, err := Load(path)
	require.Error(t, err)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holdem-odds.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
