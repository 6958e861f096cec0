// Package catalog provides a cached view over the course catalog fetcher.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pathwise-io/pathwise/internal/db"
	"github.com/pathwise-io/pathwise/internal/domain/record"
	"github.com/pathwise-io/pathwise/internal/metrics"
)

const cacheKey = "catalog:courses:all"

// Fetcher matches the catalog source being decorated.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]record.Course, error)
}

// Cache decorates a Fetcher with a TTL-bound key-value cache. Cache
// failures degrade to the inner fetcher; they are never surfaced to the
// caller.
type Cache struct {
	inner  Fetcher
	store  db.KVStore
	ttl    time.Duration
	logger *zap.Logger
}

// NewCache wraps fetcher with store-backed caching.
func NewCache(inner Fetcher, store db.KVStore, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{inner: inner, store: store, ttl: ttl, logger: logger}
}

// FetchAll returns the cached catalog when present, otherwise fetches from
// the inner source and stores the result best-effort.
func (c *Cache) FetchAll(ctx context.Context) ([]record.Course, error) {
	data, err := c.store.Get(ctx, cacheKey)
	if err == nil {
		var courses []record.Course
		if jsonErr := json.Unmarshal(data, &courses); jsonErr == nil {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return courses, nil
		}
		c.logger.Warn("discarding undecodable catalog cache entry", zap.String("key", cacheKey))
	} else if !errors.Is(err, db.ErrKeyNotFound) {
		c.logger.Warn("catalog cache read failed", zap.Error(err))
	}
	metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()

	courses, err := c.inner.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	if data, err := json.Marshal(courses); err == nil {
		if err := c.store.SetWithTTL(ctx, cacheKey, data, c.ttl); err != nil {
			c.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}

	return courses, nil
}
