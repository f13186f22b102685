// Package respond renders ad service responses as JSON.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/diamondjirapat/mango-reach-management-mockup/internal/model"
)

// requestIDHeader mirrors api.RequestIDHeader; the middleware sets it on the
// response before any handler runs.
const requestIDHeader = "X-Request-ID"

// Failure is the body of every non-2xx response from the ad service.
type Failure struct {
	Error     string `json:"error"`
	Code      int    `json:"code"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// JSON encodes v with the given status. Encoding failures are logged on the
// request logger since the status line is already written.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		hlog.FromRequest(r).Error().Err(err).Int("status", status).Msg("encode response")
	}
}

// Fail writes a Failure for status with an optional human readable message.
func Fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	JSON(w, r, status, Failure{
		Error:     http.StatusText(status),
		Code:      status,
		Message:   message,
		RequestID: w.Header().Get(requestIDHeader),
	})
}

// InvalidAd rejects a request whose ad payload or query cannot be accepted.
func InvalidAd(w http.ResponseWriter, r *http.Request, message string) {
	Fail(w, r, http.StatusBadRequest, message)
}

// StatusFor maps an ad service error to the HTTP status it is reported with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ServiceError reports err from the ad service. Client errors carry the error
// text; anything else is logged with its stack and hidden behind a generic
// message.
func ServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status < http.StatusInternalServerError {
		Fail(w, r, status, err.Error())
		return
	}
	hlog.FromRequest(r).Error().Stack().Err(err).Str("path", r.URL.Path).Msg("ad request failed")
	Fail(w, r, status, "ad service could not complete the request")
}
