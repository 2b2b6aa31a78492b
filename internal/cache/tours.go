// Package cache holds the redis-backed read cache for the tour catalog.
// Caching is best effort: with no redis client every lookup is a miss and the
// service falls through to the database.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/AnaMorales4/BackColombiaTour/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

// versionKey namespaces every list key. Invalidation bumps the version, so
// stale pages become unreachable and age out by TTL instead of being scanned
// for and deleted.
const versionKey = "tours:list:ver"

type TourListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewTourListCache(client *redis.Client, ttl time.Duration, log logger.Logger) *TourListCache {
	return &TourListCache{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func (c *TourListCache) Key(ctx context.Context, f domain.TourFilter) string {
	var ver int64
	if c.client != nil {
		if v, err := c.client.Get(ctx, versionKey).Int64(); err == nil {
			ver = v
		}
	}

	active := "all"
	if f.Active != nil {
		active = strconv.FormatBool(*f.Active)
	}

	return fmt.Sprintf("tours:list:v%d:%s:%d:%d", ver, active, f.Page, f.Limit)
}

func (c *TourListCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Debug("cache get failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
		return nil, false
	}

	return payload, true
}

func (c *TourListCache) Set(ctx context.Context, key string, payload []byte) {
	if c.client == nil {
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Debug("cache set failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (c *TourListCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}

	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		c.logger.Debug("cache invalidate failed",
			logger.String("error", err.Error()),
		)
	}
}
