// Package searchcache decorates a Searcher with a short-lived Redis
// cache keyed by the canonical request JSON.
package searchcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/casedex/internal/db"
	"github.com/kailas-cloud/casedex/internal/domain"
)

const cacheKeyPrefix = "casedex:search_cache:"

// store is the consumer interface for the search cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// searcher matches the search usecase contract.
type searcher interface {
	Search(ctx context.Context, req *domain.SearchRequest) (domain.SearchResponse, error)
}

// CachedSearcher caches whole search responses in a key-value store.
// Cache failures degrade to the inner searcher and are never surfaced.
type CachedSearcher struct {
	inner      searcher
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner searcher,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedSearcher {
	return &CachedSearcher{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Search returns a cached response or calls the inner searcher.
func (c *CachedSearcher) Search(ctx context.Context, req *domain.SearchRequest) (domain.SearchResponse, error) {
	key, ok := c.cacheKey(req)
	if !ok {
		return c.inner.Search(ctx, req)
	}

	if resp, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return resp, nil
	}

	c.incCache("miss")

	resp, err := c.inner.Search(ctx, req)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	c.putToCache(ctx, key, resp)
	return resp, nil
}

func (c *CachedSearcher) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey hashes the canonical request JSON. Requests that fail to
// marshal bypass the cache entirely.
func (c *CachedSearcher) cacheKey(req *domain.SearchRequest) (string, bool) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	h := sha256.Sum256(data)
	return cacheKeyPrefix + hex.EncodeToString(h[:]), true
}

func (c *CachedSearcher) getFromCache(ctx context.Context, key string) (domain.SearchResponse, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached search response", zap.String("key", key), zap.Error(err))
		}
		return domain.SearchResponse{}, false
	}
	if len(data) == 0 {
		return domain.SearchResponse{}, false
	}

	var resp domain.SearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Warn("Failed to parse cached search response", zap.String("key", key), zap.Error(err))
		return domain.SearchResponse{}, false
	}

	return resp, true
}

func (c *CachedSearcher) putToCache(ctx context.Context, key string, resp domain.SearchResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		c.logger.Warn("Failed to encode search response for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache search response", zap.String("key", key), zap.Error(err))
	}
}
