package types

import (
	"net/http"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// HTTPClient is the subset of *http.Client used by the API layer.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
