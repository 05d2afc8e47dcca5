package store

import (
	"errors"
)

// Common store errors.
var (
	// ErrNotFound is returned when a requested word is not in the history.
	ErrNotFound = errors.New("word not found")

	// ErrInvalidEntity is returned when an entry fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
