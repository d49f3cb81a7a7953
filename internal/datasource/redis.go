package datasource

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisNotifier broadcasts change events over Redis pub/sub, one channel
// per owner, so every running API instance sees writes made by the others.
type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

func channelFor(ownerID uuid.UUID) string {
	return fmt.Sprintf("costbook:changes:%s", ownerID)
}

// Publish sends the event to the owner's channel.
func (n *RedisNotifier) Publish(ctx context.Context, ownerID uuid.UUID, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return n.client.Publish(ctx, channelFor(ownerID), payload).Err()
}

// Subscribe listens on the owner's channel until the context is done or
// the returned cancel func is called. Malformed payloads are dropped.
func (n *RedisNotifier) Subscribe(ctx context.Context, ownerID uuid.UUID) (<-chan Event, func(), error) {
	sub := n.client.Subscribe(ctx, channelFor(ownerID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, err
	}

	events := make(chan Event, 16)
	go func() {
		defer close(events)
		for msg := range sub.Channel() {
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() { _ = sub.Close() }
	return events, cancel, nil
}
