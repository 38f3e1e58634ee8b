package redis_driver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"annotate-service/app/domain"
)

// EventSource is written into every stream entry.
const EventSource = "annotate-service"

const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// RedisDriver appends annotation events to Redis Streams.
type RedisDriver struct {
	client *redis.Client
}

// NewRedisDriverWithURL creates a new Redis driver from a URL.
func NewRedisDriverWithURL(url string) (*RedisDriver, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	return &RedisDriver{client: redis.NewClient(opts)}, nil
}

// NewRedisDriverWithClient wraps an existing client.
func NewRedisDriverWithClient(client *redis.Client) *RedisDriver {
	return &RedisDriver{client: client}
}

// Close closes the Redis connection.
func (d *RedisDriver) Close() error {
	return d.client.Close()
}

// Publish appends event to stream and returns the message ID.
func (d *RedisDriver) Publish(ctx context.Context, stream string, event *domain.AnnotationEvent) (string, error) {
	if event == nil {
		return "", errors.New("event is nil")
	}

	values, err := eventToValues(event)
	if err != nil {
		return "", err
	}

	return d.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: values,
	}).Result()
}

// Ping checks if Redis is available.
func (d *RedisDriver) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

// eventToValues converts an event to the field map for XADD.
func eventToValues(event *domain.AnnotationEvent) (map[string]interface{}, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event: %w", err)
	}

	return map[string]interface{}{
		"event_id":   event.EventID,
		"event_type": string(event.EventType),
		"source":     EventSource,
		"created_at": event.OccurredAt.Format(createdAtLayout),
		"payload":    string(payload),
	}, nil
}
