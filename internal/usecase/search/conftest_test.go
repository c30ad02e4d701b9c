package search

import (
	"context"
	"testing"

	"github.com/kailas-cloud/casedex/internal/domain"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	searchFn func(ctx context.Context, req *domain.SearchRequest, skip, limit int64) ([]domain.CaseRecord, error)
	countFn  func(ctx context.Context, req *domain.SearchRequest) (int64, error)
	getFn    func(ctx context.Context, id string) (domain.CaseRecord, error)
}

func (m *mockRepo) Search(ctx context.Context, req *domain.SearchRequest, skip, limit int64) ([]domain.CaseRecord, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, req, skip, limit)
	}
	return nil, nil
}

func (m *mockRepo) CountMatches(ctx context.Context, req *domain.SearchRequest) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, req)
	}
	return 0, nil
}

func (m *mockRepo) Get(ctx context.Context, id string) (domain.CaseRecord, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domain.CaseRecord{}, nil
}

func newTestService(t *testing.T) (*Service, *mockRepo) {
	t.Helper()
	mr := &mockRepo{}
	return New(mr), mr
}

func intPtr(v int) *int { return &v }
