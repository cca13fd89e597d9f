// Package cache backs the restaurant listing read path with redis.
// Every failure degrades to a cache miss: the store stays the source of
// truth and a dead cache must never fail a request.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ListingPrefix scopes every restaurant-listing cache key so invalidation
// can sweep them without touching unrelated keys.
const ListingPrefix = "restaurants"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache get %s: %v", key, err)
		}
		return nil, false
	}
	return b, true
}

func (c *RedisCache) Set(ctx context.Context, key string, val []byte) {
	if err := c.Client.Set(ctx, key, val, c.TTL).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

// InvalidateListings deletes every listing entry. Coarse by design: any
// restaurant mutation clears the whole listing namespace.
func (c *RedisCache) InvalidateListings(ctx context.Context) {
	keys, err := c.Client.Keys(ctx, ListingPrefix+":*").Result()
	if err != nil {
		log.Printf("cache scan: %v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.Client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache del: %v", err)
	}
}
