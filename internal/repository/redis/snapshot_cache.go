package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tradeRouter/domain"

	"github.com/redis/go-redis/v9"
)

const snapshotKey = "router:snapshot"

// SnapshotCache absorbs dashboard polling: the snapshot handler serves the
// cached JSON while it is fresh and falls through to the service otherwise.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *SnapshotCache) Get(ctx context.Context) (*domain.RouterSnapshot, error) {
	val, err := c.client.Get(ctx, snapshotKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot from Redis: %w", err)
	}

	var snap domain.RouterSnapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached snapshot: %w", err)
	}

	return &snap, nil
}

func (c *SnapshotCache) Set(ctx context.Context, snap domain.RouterSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := c.client.Set(ctx, snapshotKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot in Redis: %w", err)
	}

	return nil
}
