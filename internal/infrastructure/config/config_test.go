package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceminer-go/internal/infrastructure/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()

	require.NoError(t, config.ValidateConfig(cfg))
	assert.Equal(t, 40000.0, cfg.Simulation.WorldSize)
	assert.Equal(t, 1200, cfg.Simulation.InitialAsteroids)
	assert.Equal(t, 60, cfg.Simulation.FrameRate)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "localhost:9090", cfg.Metrics.Address())
}

func TestLoadConfig_FileAndEnvironment(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "simulation:\n  world_size: 10000\n  seed: 42\nlogging:\n  level: debug\n  cue_sample_interval: 250ms\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("SM_SIMULATION_FRAME_RATE", "30")

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 10000.0, cfg.Simulation.WorldSize)
	assert.Equal(t, uint64(42), cfg.Simulation.Seed)
	assert.Equal(t, 30, cfg.Simulation.FrameRate)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 250*time.Millisecond, cfg.Logging.CueSampleInterval)
}

func TestValidateConfig_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"tiny world", func(c *config.Config) { c.Simulation.WorldSize = 10 }},
		{"unknown log level", func(c *config.Config) { c.Logging.Level = "loud" }},
		{"file output without path", func(c *config.Config) { c.Logging.Output = "file" }},
		{"unknown database", func(c *config.Config) { c.Database.Type = "mysql" }},
		{"privileged metrics port", func(c *config.Config) { c.Metrics.Port = 80 }},
		{"viewport wider than world", func(c *config.Config) { c.Simulation.ViewportWidth = c.Simulation.WorldSize + 1 }},
		{"postgres without host", func(c *config.Config) {
			c.Database.Type = "postgres"
			c.Database.Host = ""
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)

			assert.Error(t, config.ValidateConfig(cfg))
		})
	}
}

func TestValidateConfig_PostgresURLNeedsNoFields(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Type = "postgres"
	cfg.Database.Host = ""
	cfg.Database.Name = ""
	cfg.Database.URL = "postgres://miner@db/journal"

	assert.NoError(t, config.ValidateConfig(cfg))
}

func TestValidateConfig_NamesFieldsByConfigKey(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.FrameRate = 0

	err := config.ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulation.frame_rate: failed min=1")
}
