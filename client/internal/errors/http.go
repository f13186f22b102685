package errors

import (
	"io"
	"net/http"
	"strings"
)

// maxBodyBytes bounds how much of an error response body is kept.
const maxBodyBytes = 4 << 10

// CheckResponse returns nil for 2xx responses and a *StatusError otherwise.
// The response body is read (bounded) but not closed.
func CheckResponse(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	se := &StatusError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(b)),
		Category:   categoryFor(resp.StatusCode),
	}
	if resp.Request != nil {
		se.Method = resp.Request.Method
		if resp.Request.URL != nil {
			se.URL = resp.Request.URL.String()
		}
	}
	return se
}

// categoryFor maps HTTP status codes to error categories.
func categoryFor(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		// 1xx/3xx leaking through the transport; be conservative.
		return Recoverable
	}
}
