// Package db defines the storage contracts for casedex.
//
// The case collection lives in MongoDB and is the system of record,
// owned externally; this service only reads it. Redis is used solely
// as an optional cache for search responses.
package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Store is the document-store facade for the case collection.
type Store interface {
	Pinger
	DocumentStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Cache is the key-value facade for the search-result cache.
type Cache interface {
	Pinger
	KVStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// FindOptions carries sorting and pagination for a fetch query.
type FindOptions struct {
	Sort  bson.D
	Skip  int64
	Limit int64
}

// DocumentStore provides read-only queries over the case collection.
type DocumentStore interface {
	Find(ctx context.Context, filter bson.M, opts FindOptions) ([]bson.M, error)
	FindOne(ctx context.Context, filter bson.M) (bson.M, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Aggregate(ctx context.Context, pipeline []bson.M) ([]bson.M, error)
}

// KVStore provides the cache operations used by the search cache.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
