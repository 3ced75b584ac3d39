package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLs follow the per-page revalidation windows of the rendered site.
const (
	TTLNews    = 5 * time.Minute  // news listings
	TTLTeam    = 10 * time.Minute // team page (rarely changes)
	TTLGallery = 10 * time.Minute // gallery aggregation
	TTLJobs    = 10 * time.Minute // job listings
	TTLDefault = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixNews    = "news:"
	PrefixTeam    = "team:"
	PrefixGallery = "gallery:"
	PrefixJobs    = "jobs:"
)

// Service Redis-backed content cache.
// All operations degrade to no-ops when Redis is not configured,
// so a missing cache never breaks a page read.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPrefix(ctx context.Context, prefix string) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a cache service. A nil client yields a no-op cache.
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable reports whether a Redis client is attached
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping tests the Redis connection
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get reads a cached value into dest
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set stores a value under key with the given TTL
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // no Redis, skip silently
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes cached keys
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// DeleteByPrefix removes every key under a prefix (used on admin mutations)
func (c *redisCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	if c.client == nil {
		return nil
	}
	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
