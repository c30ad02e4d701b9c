package domain

import "errors"

var (
	// ErrInvalidRequest signals a malformed or out-of-range search request.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrCaseNotFound signals a missing case record.
	ErrCaseNotFound = errors.New("case not found")
)
