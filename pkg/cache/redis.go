// Package cache holds the shared Redis client. The only consumer today is
// the per-IP rate limiter; the client is optional: when Redis is not
// reachable the limiter falls back to its in-memory buckets.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joseenriquez/lecturaviva/config"
)

var RDB *redis.Client

// Connect initialises the Redis client and verifies the connection with a
// ping. Returns an error so the caller can react (log warning and fall back).
func Connect() error {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := RDB.Ping(ctx).Err(); err != nil {
		RDB = nil // mark as unavailable so callers no-op safely
		return fmt.Errorf("cache: redis ping: %w", err)
	}
	return nil
}

// Close releases the Redis client. Safe to call when Connect failed.
func Close() {
	if RDB == nil {
		return
	}
	_ = RDB.Close()
	RDB = nil
}

// Hit increments the counter stored under key and returns the new count.
// The key expires after window, so the count is a fixed-window tally.
func Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	if RDB == nil {
		return 0, fmt.Errorf("cache: redis unavailable")
	}

	pipe := RDB.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
