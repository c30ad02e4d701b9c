// Package stats assembles dashboard aggregates over the case collection.
package stats

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/casedex/internal/domain"
)

// Service computes dashboard statistics.
type Service struct {
	repo Repository
}

// New creates a stats service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Overview runs the three aggregations concurrently.
func (s *Service) Overview(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.Provinces, err = s.repo.CountByProvince(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Industries, err = s.repo.CountByIndustry(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Months, err = s.repo.MonthlyTotals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Stats{}, fmt.Errorf("aggregate stats: %w", err)
	}

	return stats, nil
}
