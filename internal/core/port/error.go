package port

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when the store rejects a write because of a
	// uniqueness or referential constraint.
	ErrConflict = errors.New("conflict")
)
