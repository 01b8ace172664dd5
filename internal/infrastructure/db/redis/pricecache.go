package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coursehub/pricing-api/internal/core/domain"
)

const (
	priceListKey = "prices:list"
	priceListTTL = 5 * time.Minute
)

// PriceCache caches the full price list in Redis. It is best-effort: the
// service falls back to the store on any cache error.
type PriceCache struct {
	client *redis.Client
}

func NewPriceCache(client *redis.Client) *PriceCache {
	return &PriceCache{client: client}
}

// GetList returns the cached list, or (nil, nil) on a miss.
func (c *PriceCache) GetList(ctx context.Context) ([]*domain.Price, error) {
	raw, err := c.client.Get(ctx, priceListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("price cache get: %w", err)
	}

	var prices []*domain.Price
	if err := json.Unmarshal(raw, &prices); err != nil {
		// Unreadable entry: drop it and treat as a miss.
		_ = c.client.Del(ctx, priceListKey).Err()
		return nil, nil
	}
	return prices, nil
}

func (c *PriceCache) SetList(ctx context.Context, prices []*domain.Price) error {
	raw, err := json.Marshal(prices)
	if err != nil {
		return fmt.Errorf("price cache encode: %w", err)
	}
	return c.client.Set(ctx, priceListKey, raw, priceListTTL).Err()
}

func (c *PriceCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, priceListKey).Err()
}
