package stats

import (
	"context"

	"github.com/kailas-cloud/casedex/internal/domain"
)

// Repository defines the aggregation contract for dashboard statistics.
type Repository interface {
	CountByProvince(ctx context.Context) ([]domain.StatBucket, error)
	CountByIndustry(ctx context.Context) ([]domain.StatBucket, error)
	MonthlyTotals(ctx context.Context) ([]domain.StatBucket, error)
}
