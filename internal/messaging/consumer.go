package messaging

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

// Handler processes a single event. Handlers are synchronous and easy to test.
type Handler[T any] func(ctx context.Context, event *T) error

// Subscribe routes messages of topic to handler, decoding their JSON payload
// into T. Messages that fail to decode or whose handler fails are logged and
// acknowledged; nothing is redelivered.
func Subscribe[T any](g *ConsumerGroup, name, topic string, handler Handler[T]) {
	g.router.AddNoPublisherHandler(name, topic, g.subscriber, func(msg *message.Message) error {
		logger := g.logger.With(
			zap.String("handler", name),
			zap.String("topic", topic),
			zap.String("messageId", msg.UUID),
		)
		if id := msg.Metadata.Get(MetadataRequestID); id != "" {
			logger = logger.With(zap.String("requestId", id))
		}

		var event T
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			logger.Error("failed to unmarshal event", zap.Error(err))

			return nil
		}

		if err := handler(msg.Context(), &event); err != nil {
			logger.Error("failed to handle event", zap.Error(err))

			return nil
		}

		logger.Debug("processed event")

		return nil
	})

	g.handlers++
}
