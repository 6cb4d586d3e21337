package rates

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gisusafaris/faq-bot/internal/config"
	"github.com/gisusafaris/faq-bot/internal/metrics"
)

const keyPrefix = "faqbot:rate:"

// CachedClient serves repeated conversions from Redis. Only successful
// conversions are stored; cache failures fall through to the wrapped
// Converter.
type CachedClient struct {
	next  Converter
	redis *redis.Client
	ttl   time.Duration
}

func NewRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

func NewCachedClient(next Converter, rdb *redis.Client, ttl time.Duration) *CachedClient {
	return &CachedClient{next: next, redis: rdb, ttl: ttl}
}

func cacheKey(amount float64, from, to string) string {
	return fmt.Sprintf("%s%s:%s:%s", keyPrefix, from, to, strconv.FormatFloat(amount, 'f', -1, 64))
}

func (c *CachedClient) Convert(ctx context.Context, amount float64, from, to string) Conversion {
	key := cacheKey(amount, from, to)

	cached, err := c.redis.Get(ctx, key).Float64()
	switch {
	case err == nil:
		metrics.RateCache.WithLabelValues("hit").Inc()
		slog.Debug("Exchange rate cache hit", "key", key)
		return Converted(cached)
	case errors.Is(err, redis.Nil):
		metrics.RateCache.WithLabelValues("miss").Inc()
	default:
		metrics.RateCache.WithLabelValues("error").Inc()
		slog.Warn("Exchange rate cache read failed", "key", key, "error", err)
	}

	conv := c.next.Convert(ctx, amount, from, to)
	if conv.Status != StatusConverted {
		return conv
	}

	if err := c.redis.Set(ctx, key, conv.Result, c.ttl).Err(); err != nil {
		slog.Warn("Exchange rate cache write failed", "key", key, "error", err)
	}
	return conv
}

// Ping reports whether the cache backend is reachable.
func (c *CachedClient) Ping(ctx context.Context) error {
	if err := c.redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (c *CachedClient) Close() error {
	return c.redis.Close()
}
