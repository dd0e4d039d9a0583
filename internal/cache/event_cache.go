package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/siddhityagi17/event-manager/internal/model"

	"github.com/redis/go-redis/v9"
)

// EventCache holds a snapshot of the full event list. Mutations
// invalidate it; readers fall back to the store on any miss or error.
type EventCache interface {
	GetEvents(ctx context.Context) ([]*model.Event, error)
	SetEvents(ctx context.Context, events []*model.Event) error
	Invalidate(ctx context.Context) error
}

const (
	eventListKey = "events:all"
	eventListTTL = 30 * time.Second
)

type RedisEventCache struct {
	client *redis.Client
}

func NewRedisEventCache(client *redis.Client) EventCache {
	return &RedisEventCache{
		client: client,
	}
}

// GetEvents returns a nil slice on a cache miss.
func (c *RedisEventCache) GetEvents(ctx context.Context) ([]*model.Event, error) {
	payload, err := c.client.Get(ctx, eventListKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	events := make([]*model.Event, 0)
	if err := json.Unmarshal(payload, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *RedisEventCache) SetEvents(ctx context.Context, events []*model.Event) error {
	payload, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, eventListKey, payload, eventListTTL).Err()
}

func (c *RedisEventCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, eventListKey).Err()
}
