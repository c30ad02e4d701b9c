package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/casedex/internal/domain"
)

type mockRepo struct {
	provinceFn func(ctx context.Context) ([]domain.StatBucket, error)
	industryFn func(ctx context.Context) ([]domain.StatBucket, error)
	monthlyFn  func(ctx context.Context) ([]domain.StatBucket, error)
}

func (m *mockRepo) CountByProvince(ctx context.Context) ([]domain.StatBucket, error) {
	if m.provinceFn != nil {
		return m.provinceFn(ctx)
	}
	return nil, nil
}

func (m *mockRepo) CountByIndustry(ctx context.Context) ([]domain.StatBucket, error) {
	if m.industryFn != nil {
		return m.industryFn(ctx)
	}
	return nil, nil
}

func (m *mockRepo) MonthlyTotals(ctx context.Context) ([]domain.StatBucket, error) {
	if m.monthlyFn != nil {
		return m.monthlyFn(ctx)
	}
	return nil, nil
}

func TestOverview_AssemblesAllSections(t *testing.T) {
	mr := &mockRepo{
		provinceFn: func(ctx context.Context) ([]domain.StatBucket, error) {
			return []domain.StatBucket{{Label: "广东省", Count: 12}}, nil
		},
		industryFn: func(ctx context.Context) ([]domain.StatBucket, error) {
			return []domain.StatBucket{{Label: "银行", Count: 9}}, nil
		},
		monthlyFn: func(ctx context.Context) ([]domain.StatBucket, error) {
			return []domain.StatBucket{{Label: "2021-06", Count: 3, Amount: 1500000}}, nil
		},
	}

	stats, err := New(mr).Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stats.Provinces) != 1 || stats.Provinces[0].Label != "广东省" {
		t.Errorf("unexpected provinces %+v", stats.Provinces)
	}
	if len(stats.Industries) != 1 || stats.Industries[0].Label != "银行" {
		t.Errorf("unexpected industries %+v", stats.Industries)
	}
	if len(stats.Months) != 1 || stats.Months[0].Amount != 1500000 {
		t.Errorf("unexpected months %+v", stats.Months)
	}
}

func TestOverview_ErrorPropagates(t *testing.T) {
	aggErr := errors.New("pipeline failed")
	mr := &mockRepo{
		industryFn: func(ctx context.Context) ([]domain.StatBucket, error) {
			return nil, aggErr
		},
	}

	_, err := New(mr).Overview(context.Background())
	if !errors.Is(err, aggErr) {
		t.Fatalf("expected wrapped aggregation error, got %v", err)
	}
}
