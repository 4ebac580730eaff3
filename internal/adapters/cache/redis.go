// Package cache provides a Redis-backed transcript cache shared between
// reconciliation passes.
package cache

import (
	"context"
	"time"

	"github.com/poyrazK/zonesync/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache implements ports.TranscriptCache. Transcripts are keyed by target
// and expire with the TTL the reconciler passes in, so a stale transfer never
// outlives its configured window.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates and returns a new RedisCache instance.
func NewRedisCache(addr string, password string, db int) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{client: rdb}
}

// Get returns the cached transcript for the target, if present.
func (r *RedisCache) Get(ctx context.Context, target domain.Target) (string, bool) {
	val, err := r.client.Get(ctx, key(target)).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores the transcript under the target's key with the given TTL.
func (r *RedisCache) Set(ctx context.Context, target domain.Target, transcript string, ttl time.Duration) {
	r.client.Set(ctx, key(target), transcript, ttl)
}

// Ping checks connectivity to the Redis server.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func key(t domain.Target) string {
	return "axfr:" + t.Zone + "@" + t.Server
}
