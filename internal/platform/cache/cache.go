// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package cache provides a small JSON read-through cache over Redis.
//
// # Usage
//
// Services consult the cache on hot public reads and invalidate on writes.
// A nil *Cache is a valid no-op instance, so unit tests and degraded
// deployments work without a Redis connection.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/medira/internal/platform/ctxutil"
)

// Cache wraps a Redis client with JSON serialization.
//
// # Failure Policy
//
// Cache failures are never surfaced to callers: a broken cache degrades to
// the document store, it does not take requests down with it. Failures are
// logged at WARN via the per-request logger.
type Cache struct {
	client *redis.Client
}

// New wraps a Redis client. Passing nil yields a no-op cache.
func New(client *redis.Client) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client}
}

// GetJSON loads the value stored under key into target.
// The boolean reports whether the key was present.
func (cache *Cache) GetJSON(ctx context.Context, key string, target interface{}) bool {
	if cache == nil {
		return false
	}

	raw, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			ctxutil.GetLogger(ctx).Warn("cache_get_failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
		return false
	}

	if err := json.Unmarshal(raw, target); err != nil {
		// A corrupt entry is treated as a miss and overwritten on the next set.
		ctxutil.GetLogger(ctx).Warn("cache_decode_failed", slog.String("key", key))
		return false
	}

	return true
}

// SetJSON stores value under key with the given TTL.
func (cache *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if cache == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		ctxutil.GetLogger(ctx).Warn("cache_encode_failed", slog.String("key", key))
		return
	}

	if err := cache.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		ctxutil.GetLogger(ctx).Warn("cache_set_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

// Invalidate removes the given keys. Used by write paths to keep the public
// catalogue caches coherent with the store.
func (cache *Cache) Invalidate(ctx context.Context, keys ...string) {
	if cache == nil || len(keys) == 0 {
		return
	}

	if err := cache.client.Del(ctx, keys...).Err(); err != nil {
		ctxutil.GetLogger(ctx).Warn("cache_invalidate_failed", slog.Any("error", err))
	}
}
