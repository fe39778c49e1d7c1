// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input provided")
	ErrOperationFailed = errors.New("database operation failed") // Executor reported failure status
	ErrNoRowReturned   = errors.New("statement returned no row")
	ErrUnknownTable    = errors.New("unknown table")
)

// IsError reports whether err matches target anywhere in its chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
