package sink

import (
	"context"

	"github.com/serroba/urlregistry/internal/audit"
	"go.uber.org/zap"
)

// Log is an audit.Sink that writes events to the logger.
type Log struct {
	logger *zap.Logger
}

// NewLog creates a logging audit sink.
func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) WriteEntryRegistered(_ context.Context, event *audit.EntryRegisteredEvent) error {
	l.logger.Info("entry registered event received",
		zap.Int64("shortUrl", event.ShortURL),
		zap.String("originalUrl", event.OriginalURL),
		zap.Time("createdAt", event.CreatedAt),
		zap.String("requestId", event.RequestID),
	)

	return nil
}
