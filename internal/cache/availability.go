package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AvailabilityCache keeps each room's unavailable dates in redis under a
// short TTL. It is a read accelerator only: every hold, release, block and
// unblock invalidates the key, and the calendar table stays the single
// source of truth.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		ttl:    ttl,
	}
}

func key(roomID string) string { return "availability:room:" + roomID }

func (c *AvailabilityCache) GetUnavailable(ctx context.Context, roomID string) ([]time.Time, bool, error) {
	raw, err := c.client.Get(ctx, key(roomID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var dates []string
	if err = json.Unmarshal([]byte(raw), &dates); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}

	days := make([]time.Time, 0, len(dates))
	for _, s := range dates {
		d, pErr := time.Parse(time.DateOnly, s)
		if pErr != nil {
			return nil, false, fmt.Errorf("cache decode day %q: %w", s, pErr)
		}
		days = append(days, d)
	}

	return days, true, nil
}

func (c *AvailabilityCache) SetUnavailable(ctx context.Context, roomID string, days []time.Time) error {
	dates := make([]string, len(days))
	for i, d := range days {
		dates[i] = d.UTC().Format(time.DateOnly)
	}
	raw, err := json.Marshal(dates)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}

	if err = c.client.Set(ctx, key(roomID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}

	return nil
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, roomID string) error {
	if err := c.client.Del(ctx, key(roomID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}

	return nil
}
