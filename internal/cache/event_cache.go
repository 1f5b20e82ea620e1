package cache

import (
	"context"
	"encoding/json"
	"time"

	"go-event-registration/internal/model"
	apperrors "go-event-registration/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

const openEventsKey = "events:open"

// RedisEventCache keeps a short-lived copy of the open-event listing so the
// registration form does not hit Postgres on every render. Staleness is
// bounded by the TTL; callers re-filter cached events against the current
// clock.
type RedisEventCache interface {
	GetOpenEvents(ctx context.Context) ([]*model.Event, error)
	SetOpenEvents(ctx context.Context, events []*model.Event) error
	// InvalidateOpenEvents drops the cached listing ahead of its TTL.
	InvalidateOpenEvents(ctx context.Context) error
}

type RedisEventCacheImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisEventCache(client *redis.Client, ttl time.Duration) RedisEventCache {
	return &RedisEventCacheImpl{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisEventCacheImpl) GetOpenEvents(ctx context.Context) ([]*model.Event, error) {
	payload, err := c.client.Get(ctx, openEventsKey).Bytes()
	if err == redis.Nil {
		return nil, apperrors.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var events []*model.Event
	if err := json.Unmarshal(payload, &events); err != nil {
		// a corrupt payload is treated as a miss; the caller refills it
		return nil, apperrors.ErrCacheMiss
	}

	return events, nil
}

func (c *RedisEventCacheImpl) SetOpenEvents(ctx context.Context, events []*model.Event) error {
	payload, err := json.Marshal(events)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, openEventsKey, payload, c.ttl).Err()
}

func (c *RedisEventCacheImpl) InvalidateOpenEvents(ctx context.Context) error {
	return c.client.Del(ctx, openEventsKey).Err()
}
