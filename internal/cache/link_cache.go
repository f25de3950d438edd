package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Resolved payment-link URLs change rarely (only when someone rotates a
// Stripe link), so a generous TTL is fine. Price ranges change whenever an
// admin edits the table, so they get a short TTL and explicit invalidation.
const (
	linkTTL       = 6 * time.Hour
	priceRangeTTL = 10 * time.Minute
)

// LinkCache caches resolved payment-link URLs and formatted price ranges.
type LinkCache struct {
	redis *RedisClient
}

// NewLinkCache creates a new LinkCache.
func NewLinkCache(redis *RedisClient) *LinkCache {
	return &LinkCache{redis: redis}
}

func (c *LinkCache) linkKey(key string) string {
	return fmt.Sprintf("paylink:%s", key)
}

func (c *LinkCache) rangeKey(currency, locale string) string {
	return fmt.Sprintf("pricerange:%s:%s", currency, locale)
}

// SetLink stores a resolved payment-link URL.
func (c *LinkCache) SetLink(ctx context.Context, key, url string) error {
	return c.redis.Set(ctx, c.linkKey(key), url, linkTTL)
}

// GetLink retrieves a cached payment-link URL. A miss returns ("", nil).
func (c *LinkCache) GetLink(ctx context.Context, key string) (string, error) {
	url, err := c.redis.Get(ctx, c.linkKey(key))
	if err == redis.Nil {
		return "", nil
	}
	return url, err
}

// SetPriceRange stores a formatted price range for a (currency, locale) pair.
func (c *LinkCache) SetPriceRange(ctx context.Context, currency, locale, formatted string) error {
	return c.redis.Set(ctx, c.rangeKey(currency, locale), formatted, priceRangeTTL)
}

// GetPriceRange retrieves a cached price range. A miss returns ("", nil).
func (c *LinkCache) GetPriceRange(ctx context.Context, currency, locale string) (string, error) {
	v, err := c.redis.Get(ctx, c.rangeKey(currency, locale))
	if err == redis.Nil {
		return "", nil
	}
	return v, err
}

// InvalidatePriceRanges drops every cached price range. Called after an
// admin price mutation so stale ranges never outlive a catalog refresh.
func (c *LinkCache) InvalidatePriceRanges(ctx context.Context) error {
	keys, err := c.redis.Keys(ctx, "pricerange:*")
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.redis.Delete(ctx, keys...)
}
