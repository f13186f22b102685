package client

import (
	"context"
	"errors"

	clienterrors "github.com/diamondjirapat/mango-reach-management-mockup/client/internal/errors"
)

// StatusError is returned when the service answers with a non-2xx status.
type StatusError = clienterrors.StatusError

// IsStatus reports whether err carries a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// IsRetryable reports whether repeating the request may succeed. Status
// errors follow their category; any other non-nil error (network failure,
// timeout) is treated as retryable except context cancellation.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	return !clienterrors.IsIrrecoverable(err)
}
