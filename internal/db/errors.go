package db

import "errors"

// Sentinel errors for store operations.
var (
	ErrNotFound    = errors.New("db: document not found")
	ErrKeyNotFound = errors.New("db: key not found")
)

// Op constants name the underlying store command for error context.
const (
	OpFind      = "find"
	OpFindOne   = "findOne"
	OpCount     = "countDocuments"
	OpAggregate = "aggregate"
	OpPing      = "ping"
	OpGet       = "GET"
	OpSet       = "SET"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
