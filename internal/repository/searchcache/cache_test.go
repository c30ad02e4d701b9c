package searchcache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kailas-cloud/casedex/internal/db"
	"github.com/kailas-cloud/casedex/internal/domain"
)

func TestSearch_MissCallsInnerAndStores(t *testing.T) {
	cache, inner, ms := newTestCache(t)

	ms.getFn = func(ctx context.Context, key string) ([]byte, error) {
		return nil, db.ErrKeyNotFound
	}

	var storedKey string
	var storedVal []byte
	var storedTTL time.Duration
	ms.setFn = func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
		storedKey, storedVal, storedTTL = key, value, ttl
		return nil
	}

	inner.searchFn = func(ctx context.Context, req *domain.SearchRequest) (domain.SearchResponse, error) {
		return domain.SearchResponse{Total: 7, Page: 1, PageSize: 20}, nil
	}

	resp, err := cache.Search(context.Background(), &domain.SearchRequest{Keyword: "罚款"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 7 {
		t.Errorf("expected total 7, got %d", resp.Total)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.calls)
	}
	if !strings.HasPrefix(storedKey, cacheKeyPrefix) {
		t.Errorf("unexpected cache key %q", storedKey)
	}
	if storedTTL != 5*time.Minute {
		t.Errorf("expected ttl 5m, got %v", storedTTL)
	}

	var stored domain.SearchResponse
	if err := json.Unmarshal(storedVal, &stored); err != nil {
		t.Fatalf("stored value is not valid JSON: %v", err)
	}
	if stored.Total != 7 {
		t.Errorf("expected stored total 7, got %d", stored.Total)
	}
}

func TestSearch_HitSkipsInner(t *testing.T) {
	cache, inner, ms := newTestCache(t)

	cached, _ := json.Marshal(domain.SearchResponse{Total: 3, Page: 2, PageSize: 20})
	ms.getFn = func(ctx context.Context, key string) ([]byte, error) {
		return cached, nil
	}

	resp, err := cache.Search(context.Background(), &domain.SearchRequest{Keyword: "罚款"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 3 || resp.Page != 2 {
		t.Errorf("unexpected cached response %+v", resp)
	}
	if inner.calls != 0 {
		t.Errorf("expected no inner calls, got %d", inner.calls)
	}
}

func TestSearch_SameRequestSameKey(t *testing.T) {
	cache, _, ms := newTestCache(t)

	keys := map[string]bool{}
	ms.getFn = func(ctx context.Context, key string) ([]byte, error) {
		keys[key] = true
		return nil, db.ErrKeyNotFound
	}

	req := func() *domain.SearchRequest {
		return &domain.SearchRequest{Industry: "银行", Keyword: "反洗钱"}
	}
	if _, err := cache.Search(context.Background(), req()); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Search(context.Background(), req()); err != nil {
		t.Fatal(err)
	}

	if len(keys) != 1 {
		t.Errorf("expected identical requests to share a key, got %d keys", len(keys))
	}
}

func TestSearch_StoreFailureDegradesToInner(t *testing.T) {
	cache, inner, ms := newTestCache(t)

	ms.getFn = func(ctx context.Context, key string) ([]byte, error) {
		return nil, errors.New("connection refused")
	}
	ms.setFn = func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
		return errors.New("connection refused")
	}
	inner.searchFn = func(ctx context.Context, req *domain.SearchRequest) (domain.SearchResponse, error) {
		return domain.SearchResponse{Total: 1}, nil
	}

	resp, err := cache.Search(context.Background(), &domain.SearchRequest{})
	if err != nil {
		t.Fatalf("expected cache failure to be swallowed, got %v", err)
	}
	if resp.Total != 1 || inner.calls != 1 {
		t.Errorf("expected inner result, got %+v (calls=%d)", resp, inner.calls)
	}
}

func TestSearch_CorruptCacheEntryIgnored(t *testing.T) {
	cache, inner, ms := newTestCache(t)

	ms.getFn = func(ctx context.Context, key string) ([]byte, error) {
		return []byte("{not json"), nil
	}
	inner.searchFn = func(ctx context.Context, req *domain.SearchRequest) (domain.SearchResponse, error) {
		return domain.SearchResponse{Total: 2}, nil
	}

	resp, err := cache.Search(context.Background(), &domain.SearchRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 2 || inner.calls != 1 {
		t.Errorf("expected fall through to inner, got %+v (calls=%d)", resp, inner.calls)
	}
}

func TestSearch_InnerErrorNotCached(t *testing.T) {
	cache, inner, ms := newTestCache(t)

	ms.getFn = func(ctx context.Context, key string) ([]byte, error) {
		return nil, db.ErrKeyNotFound
	}
	stored := false
	ms.setFn = func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
		stored = true
		return nil
	}

	innerErr := errors.New("server selection timeout")
	inner.searchFn = func(ctx context.Context, req *domain.SearchRequest) (domain.SearchResponse, error) {
		return domain.SearchResponse{}, innerErr
	}

	_, err := cache.Search(context.Background(), &domain.SearchRequest{})
	if !errors.Is(err, innerErr) {
		t.Fatalf("expected inner error, got %v", err)
	}
	if stored {
		t.Error("failed searches must not be cached")
	}
}
