package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/serroba/urlregistry/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccessLog(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		level   zapcore.Level
		message string
	}{
		{name: "success", status: http.StatusOK, level: zapcore.InfoLevel, message: "request processed"},
		{name: "redirect", status: http.StatusFound, level: zapcore.InfoLevel, message: "request processed"},
		{name: "client error", status: http.StatusNotFound, level: zapcore.WarnLevel, message: "client error"},
		{name: "server error", status: http.StatusInternalServerError, level: zapcore.ErrorLevel, message: "server error"},
	}

	for _, tt := range tests {
		t.Run("logs "+tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			handler := middleware.AccessLog(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set(middleware.HeaderRequestID, "req-1")
				w.WriteHeader(tt.status)
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/shorturl/1", nil))

			require.Equal(t, 1, logs.Len())

			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.message, entry.Message)

			fields := entry.ContextMap()
			assert.Equal(t, "/api/shorturl/1", fields["path"])
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.Equal(t, "req-1", fields["requestId"])
		})
	}

	t.Run("defaults to 200 when nothing is written", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		handler := middleware.AccessLog(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, int64(http.StatusOK), logs.All()[0].ContextMap()["status"])
	})
}
