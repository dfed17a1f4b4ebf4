// internal/common/cache/redis.go
// Package cache provides an optional read-through store for raw search
// responses, keyed by the exact request sent to the server.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "voteview:"

// Cache stores raw response bodies between identical searches.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, body []byte)
}

// RedisCache backs Cache with a redis instance and a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		// Miss and connection failure look the same to the caller: the
		// search falls through to the network.
		return nil, false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key string, body []byte) {
	c.client.Set(ctx, keyPrefix+key, body, c.ttl)
}
