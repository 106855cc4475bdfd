package audit

import (
	"context"
	"errors"

	"github.com/serroba/urlregistry/internal/messaging"
)

// Sink persists registration events.
type Sink interface {
	WriteEntryRegistered(ctx context.Context, event *EntryRegisteredEvent) error
}

// MultiSink writes every event to all of its sinks, in order.
type MultiSink []Sink

func (m MultiSink) WriteEntryRegistered(ctx context.Context, event *EntryRegisteredEvent) error {
	var errs []error

	for _, s := range m {
		if err := s.WriteEntryRegistered(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Subscribe routes registration events from the consumer group into sink.
func Subscribe(group *messaging.ConsumerGroup, sink Sink) {
	messaging.Subscribe[EntryRegisteredEvent](group, "audit.entry_registered", TopicEntryRegistered, sink.WriteEntryRegistered)
}
