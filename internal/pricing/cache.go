package pricing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/logger"
	"github.com/osse101/CropProfit_Go/internal/metrics"
)

// BuildFunc produces a fresh cache value.
type BuildFunc[T any] func(ctx context.Context) (T, error)

// Cache holds one lazily rebuilt value. Reads rebuild a stale value under
// the cache lock, so at most one rebuild runs per invalidation and no reader
// sees a half-built value.
type Cache[T any] struct {
	name  string
	build BuildFunc[T]

	mu    sync.Mutex
	value T
	valid bool
}

// NewCache creates a stale cache; the first Get builds it.
func NewCache[T any](name string, build BuildFunc[T]) *Cache[T] {
	return &Cache[T]{name: name, build: build}
}

// Get returns the cached value, rebuilding it first if it is stale.
func (c *Cache[T]) Get(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid {
		return c.value, nil
	}
	return c.rebuildLocked(ctx)
}

// Invalidate marks the value stale without rebuilding.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

// Rebuild builds the value immediately.
func (c *Cache[T]) Rebuild(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rebuildLocked(ctx)
}

// Valid reports whether the next Get is served without a rebuild.
func (c *Cache[T]) Valid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valid
}

func (c *Cache[T]) rebuildLocked(ctx context.Context) (T, error) {
	start := time.Now()
	value, err := c.build(ctx)
	metrics.CacheRebuildDuration.WithLabelValues(c.name).Observe(time.Since(start).Seconds())
	if err != nil {
		c.valid = false
		metrics.CacheRebuilds.WithLabelValues(c.name, metrics.ResultError).Inc()
		logger.FromContext(ctx).Error(LogMsgCacheRebuildFailed, "cache", c.name, "error", err)
		var zero T
		return zero, fmt.Errorf("%w: %s: %w", domain.ErrCacheRebuild, c.name, err)
	}
	c.value = value
	c.valid = true
	metrics.CacheRebuilds.WithLabelValues(c.name, metrics.ResultSuccess).Inc()
	logger.FromContext(ctx).Info(LogMsgCacheRebuilt, "cache", c.name, "duration", time.Since(start))
	return value, nil
}
