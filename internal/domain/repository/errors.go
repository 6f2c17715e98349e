package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a delete is blocked because dependent
	// records still reference the row, or when a write references a row that
	// does not exist in the same store.
	ErrConflict = errors.New("referential conflict")
)
