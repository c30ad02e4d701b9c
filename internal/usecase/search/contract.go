package search

import (
	"context"

	"github.com/kailas-cloud/casedex/internal/domain"
)

// Repository defines the storage contract for case search.
type Repository interface {
	Search(ctx context.Context, req *domain.SearchRequest, skip, limit int64) ([]domain.CaseRecord, error)
	CountMatches(ctx context.Context, req *domain.SearchRequest) (int64, error)
	Get(ctx context.Context, id string) (domain.CaseRecord, error)
}

// Searcher executes a case search. Implemented by Service and by the
// caching decorator wrapping it.
type Searcher interface {
	Search(ctx context.Context, req *domain.SearchRequest) (domain.SearchResponse, error)
}
