// Package cache is a read-through result cache for task runs, keyed by a
// digest of the task, agent, and normalized input.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long a cached result is served
const DefaultTTL = time.Hour

// Cache stores and retrieves task results
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Key builds a deterministic cache key from task, agent, and input
func Key(task, agent, input string) string {
	sum := sha256.Sum256([]byte(task + "\x00" + agent + "\x00" + strings.TrimSpace(input)))
	return "studio:result:" + hex.EncodeToString(sum[:])
}

// RedisCache backs the result cache with Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis at the given REDIS_URL
func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: redis.NewClient(opts), ttl: ttl}, nil
}

// Get returns the cached value for key, reporting whether it was present
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get: %w", err)
	}
	return val, true, nil
}

// Set stores value under key with the cache TTL
func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoopCache is used when no REDIS_URL is configured
type NoopCache struct{}

// NewNoopCache creates a cache that stores nothing
func NewNoopCache() *NoopCache { return &NoopCache{} }

func (NoopCache) Get(ctx context.Context, key string) (string, bool, error) { return "", false, nil }
func (NoopCache) Set(ctx context.Context, key, value string) error          { return nil }
func (NoopCache) Close() error                                              { return nil }

// New picks the Redis cache when a URL is configured, the no-op otherwise
func New(redisURL string, ttl time.Duration) (Cache, error) {
	if redisURL == "" {
		return NewNoopCache(), nil
	}
	return NewRedisCache(redisURL, ttl)
}
