// Package cases implements case-collection queries: predicate
// construction, paginated execution, and raw-document normalization.
package cases

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kailas-cloud/casedex/internal/db"
	"github.com/kailas-cloud/casedex/internal/domain"
)

// store is the consumer interface for case queries (ISP).
type store interface {
	Find(ctx context.Context, filter bson.M, opts db.FindOptions) ([]bson.M, error)
	FindOne(ctx context.Context, filter bson.M) (bson.M, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Aggregate(ctx context.Context, pipeline []bson.M) ([]bson.M, error)
}

// Repo implements usecase contracts over the case collection.
type Repo struct {
	store store
}

// New creates a case repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Search fetches one page of matching cases, most recent publish date
// first.
func (r *Repo) Search(ctx context.Context, req *domain.SearchRequest, skip, limit int64) ([]domain.CaseRecord, error) {
	docs, err := r.store.Find(ctx, BuildFilter(req), db.FindOptions{
		Sort:  bson.D{{Key: domain.FieldPublishDate, Value: -1}},
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("find cases: %w", err)
	}

	records := make([]domain.CaseRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, recordFromDoc(doc))
	}
	return records, nil
}

// CountMatches counts all cases matching the request, using the exact
// filter Search uses.
func (r *Repo) CountMatches(ctx context.Context, req *domain.SearchRequest) (int64, error) {
	n, err := r.store.Count(ctx, BuildFilter(req))
	if err != nil {
		return 0, fmt.Errorf("count cases: %w", err)
	}
	return n, nil
}

// Get fetches a single case by its ObjectID hex.
func (r *Repo) Get(ctx context.Context, id string) (domain.CaseRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.CaseRecord{}, fmt.Errorf("%w: bad case id %q", domain.ErrInvalidRequest, id)
	}

	doc, err := r.store.FindOne(ctx, bson.M{"_id": oid})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return domain.CaseRecord{}, domain.ErrCaseNotFound
		}
		return domain.CaseRecord{}, fmt.Errorf("find case %s: %w", id, err)
	}
	return recordFromDoc(doc), nil
}

// synonymExpr resolves a stored field under either spelling, bucketing
// absent values as 未知. Read-time enrichment never writes back, so
// aggregation sees only structured fields.
func synonymExpr(primary, alternate string) bson.M {
	return bson.M{"$ifNull": bson.A{"$" + alternate, bson.M{"$ifNull": bson.A{"$" + primary, "未知"}}}}
}

// CountByProvince groups cases by stored province, most frequent first.
func (r *Repo) CountByProvince(ctx context.Context) ([]domain.StatBucket, error) {
	return r.countByExpr(ctx, synonymExpr(domain.FieldProvince, domain.FieldProvinceAlt))
}

// CountByIndustry groups cases by stored industry, most frequent first.
func (r *Repo) CountByIndustry(ctx context.Context) ([]domain.StatBucket, error) {
	return r.countByExpr(ctx, synonymExpr(domain.FieldIndustry, domain.FieldIndustryAlt))
}

func (r *Repo) countByExpr(ctx context.Context, expr bson.M) ([]domain.StatBucket, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": expr, "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
	}

	docs, err := r.store.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate cases: %w", err)
	}
	return bucketsFromDocs(docs), nil
}

// MonthlyTotals groups cases by publish month (ascending) with the summed
// penalty amount per month. $toString unifies date- and string-typed
// publish dates before the month prefix is taken.
func (r *Repo) MonthlyTotals(ctx context.Context) ([]domain.StatBucket, error) {
	month := bson.M{"$substrCP": bson.A{
		bson.M{"$toString": "$" + domain.FieldPublishDate}, 0, 7,
	}}
	amount := bson.M{"$ifNull": bson.A{
		"$" + domain.FieldAmountAlt,
		bson.M{"$ifNull": bson.A{"$" + domain.FieldAmount, 0}},
	}}

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":    month,
			"count":  bson.M{"$sum": 1},
			"amount": bson.M{"$sum": amount},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	docs, err := r.store.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate cases: %w", err)
	}
	return bucketsFromDocs(docs), nil
}

func bucketsFromDocs(docs []bson.M) []domain.StatBucket {
	buckets := make([]domain.StatBucket, 0, len(docs))
	for _, doc := range docs {
		b := domain.StatBucket{}
		if label, ok := doc["_id"].(string); ok {
			b.Label = label
		}
		switch v := doc["count"].(type) {
		case int32:
			b.Count = int64(v)
		case int64:
			b.Count = v
		case float64:
			b.Count = int64(v)
		}
		switch v := doc["amount"].(type) {
		case float64:
			b.Amount = v
		case int32:
			b.Amount = float64(v)
		case int64:
			b.Amount = float64(v)
		}
		buckets = append(buckets, b)
	}
	return buckets
}
