package api

import (
	"strings"

	"github.com/diamondjirapat/mango-reach-management-mockup/client/internal/types"
)

// HTTPClient interface for dependency injection
type HTTPClient = types.HTTPClient

// endpoint joins baseURL and path with exactly one slash between them.
func endpoint(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
