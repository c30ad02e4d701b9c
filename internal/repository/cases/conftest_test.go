package cases

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kailas-cloud/casedex/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	findFn      func(ctx context.Context, filter bson.M, opts db.FindOptions) ([]bson.M, error)
	findOneFn   func(ctx context.Context, filter bson.M) (bson.M, error)
	countFn     func(ctx context.Context, filter bson.M) (int64, error)
	aggregateFn func(ctx context.Context, pipeline []bson.M) ([]bson.M, error)
}

func (m *mockStore) Find(ctx context.Context, filter bson.M, opts db.FindOptions) ([]bson.M, error) {
	if m.findFn != nil {
		return m.findFn(ctx, filter, opts)
	}
	return nil, nil
}

func (m *mockStore) FindOne(ctx context.Context, filter bson.M) (bson.M, error) {
	if m.findOneFn != nil {
		return m.findOneFn(ctx, filter)
	}
	return bson.M{}, nil
}

func (m *mockStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, filter)
	}
	return 0, nil
}

func (m *mockStore) Aggregate(ctx context.Context, pipeline []bson.M) ([]bson.M, error) {
	if m.aggregateFn != nil {
		return m.aggregateFn(ctx, pipeline)
	}
	return nil, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}
