// Package cache provides the rendered-page cache backing the index
// listing. Entries expire by TTL only; writes never invalidate, so a page
// may stay stale for up to one TTL. That staleness bound is the contract.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/microblog/pkg/logger"
)

type PageCache struct {
	rdb *redis.Client
}

func NewPageCache(rdb *redis.Client) *PageCache { return &PageCache{rdb: rdb} }

// Get returns the cached body for key, if any. Cache errors degrade to a
// miss so the page is served from the store instead.
func (c *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("page cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (c *PageCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) {
	if err := c.rdb.Set(ctx, key, body, ttl).Err(); err != nil {
		logger.Warn("page cache set failed", zap.String("key", key), zap.Error(err))
	}
}
