// Package store persists finished solve results and their restart traces.
package store

import "fmt"

// Store defines result persistence operations.
//
// Error handling conventions:
//   - Return ErrNotFound if a result doesn't exist (for Load/Delete)
//   - Return ErrInvalidID for IDs that are not canonical UUIDs
//   - Wrap underlying errors with context using fmt.Errorf("context: %w", err)
type Store interface {
	// SaveResult atomically writes a result under its ID, replacing any previous one.
	SaveResult(result *Result) error

	// LoadResult retrieves the result with the given ID.
	LoadResult(id string) (*Result, error)

	// ListResults returns metadata for all stored results, oldest first.
	ListResults() ([]ResultInfo, error)

	// DeleteResult removes a result and its trace.
	DeleteResult(id string) error
}

// ErrNotFound is returned when a requested result does not exist.
// Use errors.Is(err, ErrNotFound) to check for this error.
var ErrNotFound = &NotFoundError{}

// NotFoundError represents a missing result
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return "result not found: " + e.ID
	}
	return "result not found"
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// ErrInvalidID is returned for IDs that are not canonical result UUIDs.
// Use errors.Is(err, ErrInvalidID) to check for this error.
var ErrInvalidID = &InvalidIDError{}

// InvalidIDError represents a malformed result ID
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid result id %q", e.ID)
}

func (e *InvalidIDError) Is(target error) bool {
	_, ok := target.(*InvalidIDError)
	return ok
}
