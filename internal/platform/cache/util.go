package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// readThrough returns the cached value for key, or calls load and caches its
// result for ttl when keep reports it worth caching. Cache failures never fail
// the call; they only fall back to load.
func readThrough[T any](ctx context.Context, rdb *redis.Client, key string, ttl time.Duration,
	load func(ctx context.Context) (T, error), keep func(T) bool) (T, error) {
	// 1) Check cache
	if b, err := rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = rdb.Del(ctx, key).Err()
	} else if err != nil && err != redis.Nil {
		slog.Warn("cache read failed", "key", key, "error", err)
	}

	// 2) Fallback to the provider
	out, err := load(ctx)
	if err != nil {
		return out, err
	}

	// 3) Store in cache (best effort)
	if keep == nil || keep(out) {
		if b, err := json.Marshal(out); err == nil {
			_ = rdb.Set(ctx, key, b, ttl).Err()
		}
	}
	return out, nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
