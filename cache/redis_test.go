package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haiki1233/food-delivery-backend/cache"
)

func newTestCache(t *testing.T, ttl time.Duration) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	return cache.NewRedisCache(client, ttl), srv
}

func TestSetStoresWithConfiguredTTL(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, 60*time.Second)

	key := cache.ListingPrefix + ":f=:s=:p=:page=1:limit=10"
	c.Set(ctx, key, []byte(`[{"name":"Alpha"}]`))

	got, ok := c.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"name":"Alpha"}]`), got)
	assert.Equal(t, 60*time.Second, srv.TTL(key))
}

func TestEntriesExpireAfterTTL(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, 60*time.Second)

	key := cache.ListingPrefix + ":f=:s=:p=:page=1:limit=10"
	c.Set(ctx, key, []byte(`[]`))

	srv.FastForward(61 * time.Second)

	_, ok := c.Get(ctx, key)
	assert.False(t, ok)
}

func TestGetMissOnAbsentKey(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	_, ok := c.Get(context.Background(), cache.ListingPrefix+":nope")
	assert.False(t, ok)
}

func TestInvalidateListingsSweepsOnlyListingKeys(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, time.Minute)

	c.Set(ctx, cache.ListingPrefix+":a", []byte("1"))
	c.Set(ctx, cache.ListingPrefix+":b", []byte("2"))
	require.NoError(t, srv.Set("sessions:abc", "keepme"))

	c.InvalidateListings(ctx)

	_, ok := c.Get(ctx, cache.ListingPrefix+":a")
	assert.False(t, ok)
	_, ok = c.Get(ctx, cache.ListingPrefix+":b")
	assert.False(t, ok)
	assert.True(t, srv.Exists("sessions:abc"))
}

// A dead cache must present as a miss, never as an error.
func TestDeadCacheDegradesToMiss(t *testing.T) {
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := cache.NewRedisCache(client, time.Minute)

	got, ok := c.Get(ctx, cache.ListingPrefix+":x")
	assert.Nil(t, got)
	assert.False(t, ok)

	// Writes and sweeps swallow the failure instead of propagating it.
	c.Set(ctx, cache.ListingPrefix+":x", []byte("1"))
	c.InvalidateListings(ctx)
}
