package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, 25, cfg.Maze.Size)
	assert.Equal(t, "iterative", cfg.Maze.Strategy)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 2500, cfg.StepLimit())
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/mazetree.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "mazetree.yaml")
	content := `
maze:
  size: 64
  seed: 7
  strategy: recursive
play:
  detour: 0.25
  max_steps: 500
logging:
  level: DEBUG
  console_format: json
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Maze.Size)
	assert.Equal(t, int64(7), cfg.Maze.Seed)
	assert.Equal(t, "recursive", cfg.Maze.Strategy)
	assert.InDelta(t, 0.25, cfg.Play.Detour, 1e-9)
	assert.Equal(t, 500, cfg.StepLimit())
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.ConsoleFormat)
	// Fields absent from the file keep their defaults.
	assert.True(t, cfg.Logging.ConsoleEnabled)
	assert.Equal(t, 10, cfg.Logging.FileMaxSizeMB)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_BadYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("maze: [unclosed"), 0644))

	cfg, err := LoadConfig(configPath)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero size", func(c *Config) { c.Maze.Size = 0 }},
		{"unknown strategy", func(c *Config) { c.Maze.Strategy = "spiral" }},
		{"negative detour", func(c *Config) { c.Play.Detour = -0.1 }},
		{"detour above one", func(c *Config) { c.Play.Detour = 1.5 }},
		{"negative max steps", func(c *Config) { c.Play.MaxSteps = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
