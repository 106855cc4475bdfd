//go:build integration

package messaging_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/serroba/urlregistry/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func getRedisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}

	return "localhost:6379"
}

func TestRedisBusIntegration(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr: getRedisAddr(),
	})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	topic := "test." + uuid.NewString()
	defer client.Del(ctx, topic)

	logger := zap.NewNop()

	publisher, err := messaging.NewRedisPublisher(client, logger)
	require.NoError(t, err)

	subscriber, err := messaging.NewRedisSubscriber(client, "test-group", logger)
	require.NoError(t, err)

	group, err := messaging.NewConsumerGroup(subscriber, logger)
	require.NoError(t, err)

	received := make(chan testEvent, 1)
	messaging.Subscribe[testEvent](group, "test", topic, func(_ context.Context, event *testEvent) error {
		received <- *event

		return nil
	})

	require.NoError(t, group.Start(ctx))
	defer group.Shutdown()

	publish := messaging.NewPublishFunc[testEvent](publisher, topic)
	require.NoError(t, publish(ctx, &testEvent{Name: "redis"}))

	select {
	case event := <-received:
		assert.Equal(t, "redis", event.Name)
	case <-time.After(5 * time.Second):
		t.Fatal("event not delivered")
	}

	require.NoError(t, publisher.Close())
}
