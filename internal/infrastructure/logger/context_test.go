package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWithContextAndFromContext(t *testing.T) {
	t.Run("round-trips a logger", func(t *testing.T) {
		log := zap.NewNop()
		ctx := WithContext(context.Background(), log)

		assert.Equal(t, log, FromContext(ctx))
	})

	t.Run("falls back to a no-op logger", func(t *testing.T) {
		log := FromContext(context.Background())
		require.NotNil(t, log)
		// Must be safe to use
		log.Info("no-op")
	})
}

func TestWithRequestID(t *testing.T) {
	ctx, enriched := WithRequestID(context.Background(), zap.NewNop(), "req-123")

	require.NotNil(t, enriched)
	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Equal(t, enriched, FromContext(ctx))
	assert.Equal(t, "", GetRequestID(context.Background()))
}
