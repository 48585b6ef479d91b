package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reliefplan/config"
	"github.com/katalvlaran/reliefplan/core"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, core.DefaultLimits(), cfg.Limits)
	assert.Equal(t, 6, cfg.Flow.Precision)
	assert.Equal(t, 50, cfg.Planner.DefaultCapacity)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relief.yaml")
	body := []byte(`
log:
  level: debug
limits:
  max_knapsack_cells: 1234
  max_flow_nodes: 50
planner:
  workers: 2
`)
	require.NoError(t, os.WriteFile(path, body, 0o600))
	t.Setenv("RELIEF_PLANNER_WORKERS", "9")
	t.Setenv("RELIEF_FLOW_PRECISION", "3")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format, "untouched keys keep defaults")
	assert.Equal(t, 1234, cfg.Limits.MaxKnapsackCells)
	assert.Equal(t, 50, cfg.Limits.MaxFlowNodes)
	assert.Equal(t, core.DefaultLimits().MaxMSTEdges, cfg.Limits.MaxMSTEdges)
	assert.Equal(t, 9, cfg.Planner.Workers, "env beats file")
	assert.Equal(t, 3, cfg.Flow.Precision)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("RELIEF_PLANNER_WORKERS", "0")
	_, err := config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"format":         func(c *config.Config) { c.Log.Format = "xml" },
		"limits":         func(c *config.Config) { c.Limits.MaxFlowNodes = -1 },
		"epsilon":        func(c *config.Config) { c.Flow.Epsilon = 0 },
		"precision":      func(c *config.Config) { c.Flow.Precision = 16 },
		"precision zero": func(c *config.Config) { c.Flow.Precision = 0 },
		"workers":        func(c *config.Config) { c.Planner.Workers = 0 },
		"capacity":       func(c *config.Config) { c.Planner.DefaultCapacity = -5 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
