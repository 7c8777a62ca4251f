package logger

import (
	"testing"

	"github.com/fruitsales/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("creates a logger from config", func(t *testing.T) {
		log, err := New(config.LogConfig{Level: "debug", Format: "json", Output: "stdout"})
		require.NoError(t, err)
		require.NotNil(t, log)

		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("respects the configured level", func(t *testing.T) {
		log, err := New(config.LogConfig{Level: "error", Format: "console", Output: "stderr"})
		require.NoError(t, err)

		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Core().Enabled(zapcore.ErrorLevel))
	})
}

func TestNewForEnvironment(t *testing.T) {
	log, err := NewForEnvironment("production")
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}
