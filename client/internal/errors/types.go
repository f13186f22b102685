// Package errors classifies HTTP failures returned by the ads API.
// The client never retries; callers use the category to decide.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory tells callers whether repeating a request may succeed.
type ErrorCategory int

const (
	// Recoverable failures may succeed on a later attempt.
	// Examples: 500 Internal Server Error, 429 Too Many Requests.
	Recoverable ErrorCategory = iota

	// Irrecoverable failures will fail the same way again.
	// Examples: 400 Bad Request, 404 Not Found, 422 Unprocessable Entity.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// StatusError reports a response whose status code was outside 2xx.
type StatusError struct {
	Op         string // operation name, e.g. "get ads"
	Method     string
	URL        string
	StatusCode int
	Body       string // response body, truncated
	Category   ErrorCategory
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.StatusCode, e.Body)
}

// Retryable reports whether the failure is Recoverable.
func (e *StatusError) Retryable() bool { return e.Category == Recoverable }

// IsIrrecoverable returns true if err carries a StatusError that should not be retried.
func IsIrrecoverable(err error) bool {
	var se *StatusError
	if stderrors.As(err, &se) {
		return se.Category == Irrecoverable
	}
	return false
}
