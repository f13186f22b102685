package client

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestWithHTTPTimeout(t *testing.T) {
	t.Parallel()
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
	if _, err := New("http://example.com", WithHTTPTimeout(-time.Second)); err == nil {
		t.Fatalf("New should surface option errors")
	}
}

func TestWithHTTPClient_DoesNotMutateCaller(t *testing.T) {
	t.Parallel()
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(r, http.StatusOK, "[]"), nil
	})
	hc := &http.Client{Transport: rt, Timeout: time.Second}
	c, err := New("http://example.com", WithHTTPClient(hc))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := hc.Transport.(roundTripFunc); !ok {
		t.Fatalf("caller transport was replaced: %T", hc.Transport)
	}
	if c.http == hc || c.http.Timeout != time.Second {
		t.Fatalf("expected a copy carrying the caller timeout")
	}
	if _, err := New("http://example.com", WithHTTPClient(nil)); err == nil {
		t.Fatalf("expected error for nil client")
	}
}

func TestWithHeader(t *testing.T) {
	t.Parallel()
	var got http.Header
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = r.Header.Clone()
		return jsonResponse(r, http.StatusOK, "[]"), nil
	})
	c, err := New("http://example.com", WithHTTPClient(&http.Client{Transport: rt}), WithHeader("X-Team", "growth"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.GetAds(context.Background()); err != nil {
		t.Fatalf("GetAds: %v", err)
	}
	if got.Get("X-Team") != "growth" || got.Get("Content-Type") != "application/json" {
		t.Fatalf("unexpected headers: %v", got)
	}
	if _, err := New("http://example.com", WithHeader("", "x")); err == nil {
		t.Fatalf("expected error for empty header name")
	}
}

func TestHeaders_ReturnsCopy(t *testing.T) {
	t.Parallel()
	c, err := NewDefault()
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}
	h := c.Headers()
	h.Set("Content-Type", "text/plain")
	if c.Headers().Get("Content-Type") != "application/json" {
		t.Fatalf("client headers mutated through copy")
	}
}

func TestWithDebugLogging_WrapsTransport(t *testing.T) {
	t.Parallel()
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return jsonResponse(r, http.StatusOK, "[]"), nil
	})
	c, err := New("http://example.com", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ht, ok := c.http.Transport.(*headerTransport)
	if !ok {
		t.Fatalf("expected headerTransport outermost, got %T", c.http.Transport)
	}
	if _, ok := ht.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport beneath header wrapper, got %T", ht.base)
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}
