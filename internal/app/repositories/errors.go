package repositories

import "errors"

// Shared repository error types
var (
	// ErrNotFound is returned when no record matches the given identifier,
	// or when a conditional write finds its precondition no longer holds.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateISBN is returned when inserting a book whose ISBN is already taken.
	ErrDuplicateISBN = errors.New("book with this ISBN already exists")
)
