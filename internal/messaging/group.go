package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.uber.org/zap"
)

var errRouterStopped = errors.New("router stopped before running")

// ConsumerGroup runs every subscribed handler on one watermill router with a
// unified lifecycle.
type ConsumerGroup struct {
	router     *message.Router
	subscriber message.Subscriber
	logger     *zap.Logger
	handlers   int
	started    bool
	done       chan struct{}
}

// NewConsumerGroup creates a consumer group reading from subscriber.
func NewConsumerGroup(subscriber message.Subscriber, logger *zap.Logger) (*ConsumerGroup, error) {
	router, err := message.NewRouter(message.RouterConfig{
		CloseTimeout: 10 * time.Second,
	}, NewLoggerAdapter(logger))
	if err != nil {
		return nil, fmt.Errorf("create router: %w", err)
	}

	router.AddMiddleware(middleware.Recoverer)

	return &ConsumerGroup{
		router:     router,
		subscriber: subscriber,
		logger:     logger,
		done:       make(chan struct{}),
	}, nil
}

// Start subscribes every handler and returns once the router is running.
func (g *ConsumerGroup) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	g.started = true

	go func() {
		defer close(g.done)

		errCh <- g.router.Run(ctx)
	}()

	select {
	case <-g.router.Running():
		g.logger.Info("consumer group started", zap.Int("count", g.handlers))

		return nil
	case err := <-errCh:
		if err == nil {
			err = errRouterStopped
		}

		return fmt.Errorf("failed to start consumer group: %w", err)
	}
}

// Shutdown stops the router, waits for in-flight messages and closes the subscriber.
func (g *ConsumerGroup) Shutdown() error {
	g.logger.Info("shutting down consumer group")

	var firstErr error

	if err := g.router.Close(); err != nil {
		firstErr = err
	}

	if g.started {
		<-g.done
	}

	if err := g.subscriber.Close(); err != nil && firstErr == nil {
		firstErr = err
	}

	return firstErr
}
