package messaging_test

import (
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/serroba/urlregistry/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerAdapter(t *testing.T) {
	t.Run("forwards levels and fields to zap", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		adapter := messaging.NewLoggerAdapter(zap.New(core))

		adapter.Info("info message", watermill.LogFields{"topic": "a"})
		adapter.Debug("debug message", nil)
		adapter.Trace("trace message", nil)
		adapter.Error("error message", errors.New("boom"), watermill.LogFields{"n": 1})

		entries := logs.All()
		require.Len(t, entries, 4)

		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, "a", entries[0].ContextMap()["topic"])
		assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
		assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
		assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
		assert.Equal(t, "boom", entries[3].ContextMap()["error"])
	})

	t.Run("With adds fields to later entries", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		adapter := messaging.NewLoggerAdapter(zap.New(core)).With(watermill.LogFields{"router": "audit"})

		adapter.Info("started", nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "audit", logs.All()[0].ContextMap()["router"])
	})
}
