package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const channelPrefix = "salon.feed."

// RedisSink publishes events on redis pub/sub, one channel per entity
// ("salon.feed.appointment", "salon.feed.review", ...).
type RedisSink struct {
	client *redis.Client
}

func NewRedisSink(url string) (*RedisSink, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisSink{client: client}, nil
}

func (s *RedisSink) Send(ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return s.client.Publish(context.Background(), channelPrefix+ev.Entity, body).Err()
}

func (s *RedisSink) Close() error {
	return s.client.Close()
}

// Subscribe delivers decoded events for one entity to fn until ctx is
// cancelled. Malformed payloads are skipped.
func Subscribe(ctx context.Context, client *redis.Client, entity string, fn func(Event)) error {
	sub := client.Subscribe(ctx, channelPrefix+entity)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				continue
			}
			fn(ev)
		}
	}
}
