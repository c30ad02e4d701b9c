// Package search validates search requests, runs count and fetch
// concurrently against the case repository, and enriches results with
// derived province, industry, and penalty amount.
package search

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/casedex/internal/domain"
	"github.com/kailas-cloud/casedex/internal/domain/enrich"
)

// Service handles case search and single-case reads.
type Service struct {
	repo            Repository
	defaultPageSize int
	maxPageSize     int
	enrichFills     *prometheus.CounterVec
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{
		repo:            repo,
		defaultPageSize: domain.DefaultPageSize,
		maxPageSize:     100,
	}
}

// WithPagination configures page size limits.
func (s *Service) WithPagination(defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize > 0 {
		s.defaultPageSize = defaultPageSize
	}
	if maxPageSize > 0 {
		s.maxPageSize = maxPageSize
	}
	return s
}

// WithMetrics configures the enrichment-fill counter, labeled by field.
func (s *Service) WithMetrics(enrichFills *prometheus.CounterVec) *Service {
	s.enrichFills = enrichFills
	return s
}

// Search validates the request, counts and fetches the matching page
// concurrently, and enriches each returned case. A zero total is a
// successful empty result, not an error.
func (s *Service) Search(ctx context.Context, req *domain.SearchRequest) (domain.SearchResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.SearchResponse{}, err
	}

	page := req.ResolvedPage()
	pageSize := req.ResolvedPageSize(s.defaultPageSize, s.maxPageSize)
	skip := int64(page-1) * int64(pageSize)

	var (
		total int64
		cases []domain.CaseRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.repo.CountMatches(gctx, req)
		return err
	})
	g.Go(func() error {
		var err error
		cases, err = s.repo.Search(gctx, req, skip, int64(pageSize))
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.SearchResponse{}, fmt.Errorf("search cases: %w", err)
	}

	for i := range cases {
		s.enrichRecord(&cases[i])
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	return domain.SearchResponse{
		Cases:      cases,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// Get reads a single case by id, enriched the same way as search results.
func (s *Service) Get(ctx context.Context, id string) (domain.CaseRecord, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.CaseRecord{}, err
	}
	s.enrichRecord(&rec)
	return rec, nil
}

// enrichRecord fills missing derived fields in place. Stored values are
// never overwritten, and underivable fields stay empty.
func (s *Service) enrichRecord(rec *domain.CaseRecord) {
	if rec.Province == "" {
		if p := enrich.Province(rec.Authority); p != "" {
			rec.Province = p
			s.countFill("province")
		}
	}
	if rec.Industry == "" {
		if ind := enrich.Industry(rec.Party); ind != "" {
			rec.Industry = ind
			s.countFill("industry")
		}
	}
	if rec.Amount == 0 {
		if amt := enrich.Amount(rec.Decision); amt != 0 {
			rec.Amount = amt
			s.countFill("amount")
		}
	}
}

func (s *Service) countFill(field string) {
	if s.enrichFills != nil {
		s.enrichFills.WithLabelValues(field).Inc()
	}
}
