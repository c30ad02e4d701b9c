package searchcache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/casedex/internal/domain"
)

type mockStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

type mockSearcher struct {
	searchFn func(ctx context.Context, req *domain.SearchRequest) (domain.SearchResponse, error)
	calls    int
}

func (m *mockSearcher) Search(ctx context.Context, req *domain.SearchRequest) (domain.SearchResponse, error) {
	m.calls++
	if m.searchFn != nil {
		return m.searchFn(ctx, req)
	}
	return domain.SearchResponse{}, nil
}

func newTestCache(t *testing.T) (*CachedSearcher, *mockSearcher, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	inner := &mockSearcher{}
	return New(inner, ms, 5*time.Minute, nil, zap.NewNop()), inner, ms
}
