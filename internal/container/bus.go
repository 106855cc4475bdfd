package container

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/urlregistry/internal/messaging"
	"go.uber.org/zap"
)

// RedisConnection owns the redis client so the injector closes it on shutdown.
type RedisConnection struct {
	Client *redis.Client
}

func (r *RedisConnection) Shutdown() error {
	return r.Client.Close()
}

// RedisPackage provides the redis connection. Only invoke it when
// Options.RedisAddr is set.
func RedisPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*RedisConnection, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		client := redis.NewClient(&redis.Options{Addr: options.RedisAddr})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis not reachable yet", zap.String("addr", options.RedisAddr), zap.Error(err))
		}

		return &RedisConnection{Client: client}, nil
	})
}

// BusPackage provides the publisher and subscriber of the event bus: redis
// streams when Options.RedisAddr is set, an in-process channel otherwise.
func BusPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*gochannel.GoChannel, error) {
		return messaging.NewChannelBus(do.MustInvoke[*zap.Logger](i)), nil
	})

	do.Provide(i, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		if options.RedisAddr == "" {
			return messaging.NewPublisherGroup(do.MustInvoke[*gochannel.GoChannel](i)), nil
		}

		conn := do.MustInvoke[*RedisConnection](i)

		publisher, err := messaging.NewRedisPublisher(conn.Client, logger)
		if err != nil {
			return nil, err
		}

		return messaging.NewPublisherGroup(publisher), nil
	})

	do.Provide(i, func(i *do.Injector) (message.Subscriber, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		if options.RedisAddr == "" {
			return do.MustInvoke[*gochannel.GoChannel](i), nil
		}

		conn := do.MustInvoke[*RedisConnection](i)

		return messaging.NewRedisSubscriber(conn.Client, options.ConsumerGroup, logger)
	})
}
