package events

import (
	"context"
	"encoding/json"
	"fmt"

	"salonify/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const channelPrefix = "salonify:events:"

// RedisHub publishes events over Redis pub/sub so every API instance sees them.
type RedisHub struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisHub(client *redis.Client, logger *zap.Logger) *RedisHub {
	return &RedisHub{client: client, logger: logger}
}

func (h *RedisHub) Publish(ctx context.Context, topic string, event models.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if err := h.client.Publish(ctx, channelPrefix+topic, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish on %s: %w", topic, err)
	}
	return nil
}

func (h *RedisHub) Subscribe(ctx context.Context, topic string) (*Subscription, error) {
	pubsub := h.client.Subscribe(ctx, channelPrefix+topic)
	// Receive blocks until the subscription is confirmed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	sub := newSubscription(subscriberBuffer, nil)

	go func() {
		defer close(sub.ch)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-sub.done:
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev models.Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					h.logger.Warn("events: dropping malformed payload",
						zap.String("topic", topic), zap.Error(err))
					continue
				}
				select {
				case sub.ch <- ev:
				default:
				}
			}
		}
	}()
	return sub, nil
}
