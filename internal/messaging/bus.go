package messaging

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewChannelBus creates an in-process pub/sub. The returned value is both the
// publisher and the subscriber; messages published before anyone subscribes
// are dropped.
func NewChannelBus(logger *zap.Logger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, NewLoggerAdapter(logger))
}

// NewRedisPublisher creates a publisher appending messages to Redis streams
// named after their topic.
func NewRedisPublisher(client redis.UniversalClient, logger *zap.Logger) (message.Publisher, error) {
	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client:     client,
		Marshaller: redisstream.DefaultMarshallerUnmarshaller{},
	}, NewLoggerAdapter(logger))
	if err != nil {
		return nil, fmt.Errorf("create redis publisher: %w", err)
	}

	return publisher, nil
}

// NewRedisSubscriber creates a subscriber reading Redis streams as a member of
// consumerGroup, so several consumer processes share the work.
func NewRedisSubscriber(client redis.UniversalClient, consumerGroup string, logger *zap.Logger) (message.Subscriber, error) {
	subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        client,
		Unmarshaller:  redisstream.DefaultMarshallerUnmarshaller{},
		ConsumerGroup: consumerGroup,
	}, NewLoggerAdapter(logger))
	if err != nil {
		return nil, fmt.Errorf("create redis subscriber: %w", err)
	}

	return subscriber, nil
}
