package logging_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceminer-go/internal/infrastructure/config"
	"github.com/andrescamacho/spaceminer-go/internal/infrastructure/logging"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("chatty"))
}

func TestNew_WritesJSONToFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "sim.log")
	cfg := config.LoggingConfig{Level: "warn", Format: "json", Output: "file", FilePath: path}

	// Act
	logger, closeFn, err := logging.New(cfg)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("journal buffer full", "dropped_total", 3)
	require.NoError(t, closeFn())

	// Assert
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), `"dropped_total":3`)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
}
