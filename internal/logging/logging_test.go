package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/idilsaglam/freefire/internal/config"
)

func TestNewWritesJSONToFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "freefire.log")
	logger, err := New(config.LoggingConfig{Level: "info", Format: "json", Output: p}, false)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("sort done")
	_ = logger.Sync()

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"sort done"`)
	assert.NotContains(t, string(b), "hidden")
}

func TestVerboseForcesDebug(t *testing.T) {
	p := filepath.Join(t.TempDir(), "freefire.log")
	logger, err := New(config.LoggingConfig{Level: "error", Format: "console", Output: p}, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestUnknownLevelFallsBackToWarn(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "loud", Output: filepath.Join(t.TempDir(), "x.log")}, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestOwnsTerminal(t *testing.T) {
	assert.True(t, OwnsTerminal(config.LoggingConfig{}))
	assert.True(t, OwnsTerminal(config.LoggingConfig{Output: "stderr"}))
	assert.False(t, OwnsTerminal(config.LoggingConfig{Output: "/tmp/freefire.log"}))
}
