// Package cache provides the passive read-through cache used by the public
// catalog endpoints. Entries expire by TTL only; writes never invalidate.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get when the key is absent.
var ErrMiss = errors.New("cache miss")

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisCache stores values in Redis under a fixed key prefix.
type RedisCache struct {
	client *redis.Client
	prefix string
}

func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = "beauxarts:cache"
	}
	return &RedisCache{client: client, prefix: prefix}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, r.prefix+":"+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return b, err
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, r.prefix+":"+key, value, ttl).Err()
}

// Nop never stores anything. It is used when Redis is not configured.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, error)              { return nil, ErrMiss }
func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Observer is notified of hits and misses.
type Observer func(namespace string, hit bool)

// ReadThrough returns the cached JSON value for key, or calls load, stores its
// result and returns it. Cache errors are logged and treated as misses.
func ReadThrough[T any](ctx context.Context, c Cache, namespace, key string, ttl time.Duration, observe Observer, load func() (T, error)) (T, error) {
	fullKey := namespace + ":" + key
	if raw, err := c.Get(ctx, fullKey); err == nil {
		var v T
		if jsonErr := json.Unmarshal(raw, &v); jsonErr == nil {
			if observe != nil {
				observe(namespace, true)
			}
			return v, nil
		}
		slog.Warn("cache entry undecodable", "key", fullKey)
	} else if !errors.Is(err, ErrMiss) {
		slog.Warn("cache read failed", "key", fullKey, "error", err)
	}
	if observe != nil {
		observe(namespace, false)
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	if raw, err := json.Marshal(v); err == nil {
		if err := c.Set(ctx, fullKey, raw, ttl); err != nil {
			slog.Warn("cache write failed", "key", fullKey, "error", err)
		}
	}
	return v, nil
}
