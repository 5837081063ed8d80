package apperrors

import "errors"

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrDuplicateKey     = errors.New("duplicate unique key")
	ErrBadRequest       = errors.New("bad request")
)

// Resource errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrStudentNotFound  = errors.New("student not found")
	ErrBookNotFound     = errors.New("book not found")
)

// Lending state-machine errors
var (
	ErrConflict            = errors.New("conflict")
	ErrBookAlreadyBorrowed = errors.New("book is already borrowed")
	ErrBookNotBorrowed     = errors.New("book is not currently borrowed")
)

// Store errors
var (
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
