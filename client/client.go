// Package client is the Go SDK for the Mango Reach ads API.
//
// A Client holds a fixed base URL and a default header set, and maps each
// operation onto exactly one HTTP request. It does not retry, cache or
// rewrite errors: transport failures are returned as produced by net/http,
// and non-2xx responses are returned as *StatusError.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/diamondjirapat/mango-reach-management-mockup/client/internal/api"
)

// DefaultBaseURL is the address of a locally running ads service.
const DefaultBaseURL = "http://localhost:8000/api"

const defaultTimeout = 30 * time.Second

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is safe for concurrent use. Its configuration is fixed by New.
type Client struct {
	baseURL string
	headers http.Header
	http    *http.Client
}

// New constructs a Client for baseURL. Additional options can be provided
// via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("baseURL must be absolute: %q", baseURL)
	}

	c := &Client{
		baseURL: baseURL,
		headers: DefaultHeaders(),
		http:    &http.Client{Timeout: defaultTimeout},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransportWithHeaders()
	return c, nil
}

// NewDefault constructs a Client for DefaultBaseURL.
func NewDefault(opts ...Option) (*Client, error) {
	return New(DefaultBaseURL, opts...)
}

// DefaultHeaders returns a fresh copy of the headers sent with every request.
func DefaultHeaders() http.Header {
	return http.Header{"Content-Type": []string{"application/json"}}
}

// BaseURL returns the URL prefix joined with every request path.
func (c *Client) BaseURL() string { return c.baseURL }

// Headers returns a copy of the default header set.
func (c *Client) Headers() http.Header { return c.headers.Clone() }

// wrapTransportWithHeaders installs the default headers on the outermost
// transport so every request carries them.
func (c *Client) wrapTransportWithHeaders() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &headerTransport{base: base, headers: c.headers}
}

// headerTransport adds default headers that the request does not already set.
type headerTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	for name, values := range t.headers {
		if cloned.Header.Get(name) != "" {
			continue
		}
		for _, v := range values {
			cloned.Header.Add(name, v)
		}
	}
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Ads operations - delegated to internal/api
// --------------------------------------------------------------------

// GetAds issues GET /ads and returns the decoded list.
func (c *Client) GetAds(ctx context.Context) ([]Ad, error) {
	ads, err := api.ListAds(ctx, c.http, c.baseURL)
	observe(opGetAds, err)
	return ads, err
}

// GetDashboardStats issues GET /dashboard.
func (c *Client) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats, err := api.GetDashboardStats(ctx, c.http, c.baseURL)
	observe(opGetDashboardStats, err)
	return stats, err
}

// CreateAd issues POST /ads with ad serialized as JSON. ad is sent as-is;
// pass a CreateAdRequest or any value of the consumer's own shape.
func (c *Client) CreateAd(ctx context.Context, ad any) (*Ad, error) {
	created, err := api.CreateAd(ctx, c.http, c.baseURL, ad)
	observe(opCreateAd, err)
	return created, err
}
