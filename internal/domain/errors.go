package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// ValidationError reports a request that must not reach the database:
// a missing required field, or a negative identity used as an update target.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// EntityProcessingError wraps a storage failure with the role of the entity
// that hit it, so the caller knows which sub-object of the upsert failed.
type EntityProcessingError struct {
	Entity string
	Err    error
}

func (e *EntityProcessingError) Error() string {
	return fmt.Sprintf("failed to process %s: %v", e.Entity, e.Err)
}

func (e *EntityProcessingError) Unwrap() error { return e.Err }

// ConnectionError reports a pool that could not hand out a connection. No
// transaction lifecycle exists at that point.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to acquire database connection: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }
