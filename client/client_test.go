package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	clienterrors "github.com/diamondjirapat/mango-reach-management-mockup/client/internal/errors"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(r *http.Request, code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    r,
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()
	for _, bad := range []string{"", "localhost:8000", "/api", "http://[::1"} {
		if _, err := New(bad); err == nil {
			t.Fatalf("expected error for baseURL %q", bad)
		}
	}
	c, err := NewDefault()
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}
	if c.BaseURL() != "http://localhost:8000/api" {
		t.Fatalf("unexpected base url %q", c.BaseURL())
	}
	if got := c.Headers().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected default content type %q", got)
	}
}

func TestCreateAd_ExactRequest(t *testing.T) {
	t.Parallel()
	var (
		mu    sync.Mutex
		calls []*http.Request
		body  string
	)
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		calls = append(calls, r)
		body = string(b)
		mu.Unlock()
		return jsonResponse(r, http.StatusOK, `{"id":1,"project_name":"Ad1"}`), nil
	})
	c, err := NewDefault(WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}

	ad, err := c.CreateAd(context.Background(), map[string]string{"name": "Ad1"})
	if err != nil {
		t.Fatalf("CreateAd: %v", err)
	}
	if ad.ID != 1 {
		t.Fatalf("unexpected ad %+v", ad)
	}
	if len(calls) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(calls))
	}
	req := calls[0]
	if req.Method != http.MethodPost || req.URL.String() != "http://localhost:8000/api/ads" {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL)
	}
	if body != `{"name":"Ad1"}` {
		t.Fatalf("unexpected body %s", body)
	}
	if ct := req.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestOperations_MethodAndPath(t *testing.T) {
	t.Parallel()
	type seen struct{ method, url, contentType string }
	var got []seen
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = append(got, seen{r.Method, r.URL.String(), r.Header.Get("Content-Type")})
		switch r.URL.Path {
		case "/api/ads":
			if r.Method == http.MethodPost {
				return jsonResponse(r, http.StatusOK, `{"id":2}`), nil
			}
			return jsonResponse(r, http.StatusOK, `[{"id":1},{"id":2}]`), nil
		case "/api/dashboard":
			return jsonResponse(r, http.StatusOK, `{"total_projects":2,"total_clicks":30,"total_cost":4.5,"average_score":1.5}`), nil
		}
		return jsonResponse(r, http.StatusNotFound, ""), nil
	})
	c, err := New("http://ads.internal:8000/api", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	ads, err := c.GetAds(ctx)
	if err != nil || len(ads) != 2 {
		t.Fatalf("GetAds: %v %+v", err, ads)
	}
	stats, err := c.GetDashboardStats(ctx)
	if err != nil || stats.TotalProjects != 2 || stats.AverageScore != 1.5 {
		t.Fatalf("GetDashboardStats: %v %+v", err, stats)
	}
	if _, err := c.CreateAd(ctx, CreateAdRequest{ProjectName: "p"}); err != nil {
		t.Fatalf("CreateAd: %v", err)
	}

	want := []seen{
		{http.MethodGet, "http://ads.internal:8000/api/ads", "application/json"},
		{http.MethodGet, "http://ads.internal:8000/api/dashboard", "application/json"},
		{http.MethodPost, "http://ads.internal:8000/api/ads", "application/json"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d requests, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("request %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestOperations_TransportErrorPropagates(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("connection refused")
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) { return nil, sentinel })
	c, err := NewDefault(WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}
	ctx := context.Background()
	if _, err := c.GetAds(ctx); !errors.Is(err, sentinel) {
		t.Fatalf("GetAds: expected sentinel, got %v", err)
	}
	if _, err := c.GetDashboardStats(ctx); !errors.Is(err, sentinel) {
		t.Fatalf("GetDashboardStats: expected sentinel, got %v", err)
	}
	_, err = c.CreateAd(ctx, CreateAdRequest{})
	if !errors.Is(err, sentinel) {
		t.Fatalf("CreateAd: expected sentinel, got %v", err)
	}
	if !IsRetryable(err) {
		t.Fatalf("transport errors should be retryable")
	}
}

func TestOperations_ServerErrorPropagates(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("db down"))
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()
	calls := map[string]func() error{
		"get ads":             func() error { _, err := c.GetAds(ctx); return err },
		"get dashboard stats": func() error { _, err := c.GetDashboardStats(ctx); return err },
		"create ad":           func() error { _, err := c.CreateAd(ctx, CreateAdRequest{}); return err },
	}
	for op, call := range calls {
		err := call()
		var se *StatusError
		if !errors.As(err, &se) {
			t.Fatalf("%s: expected *StatusError, got %v", op, err)
		}
		if se.Op != op || se.StatusCode != http.StatusInternalServerError || se.Body != "db down" {
			t.Fatalf("%s: unexpected status error %+v", op, se)
		}
		if !IsStatus(err, http.StatusInternalServerError) || !IsRetryable(err) {
			t.Fatalf("%s: status helpers disagree", op)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()
	if IsRetryable(nil) {
		t.Fatal("nil is not retryable")
	}
	if IsRetryable(context.Canceled) {
		t.Fatal("cancellation is not retryable")
	}
	if IsRetryable(&StatusError{StatusCode: 400, Category: clienterrors.Irrecoverable}) {
		t.Fatal("400 is not retryable")
	}
	if !IsRetryable(&StatusError{StatusCode: 503, Category: clienterrors.Recoverable}) {
		t.Fatal("503 is retryable")
	}
	if !IsStatus(fmt.Errorf("wrapped: %w", &StatusError{StatusCode: 404}), 404) {
		t.Fatal("IsStatus should unwrap")
	}
}

func TestConcurrentCallsAreIndependent(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			var in map[string]string
			_ = json.NewDecoder(r.Body).Decode(&in)
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "project_name": in["project_name"]})
		case r.URL.Path == "/dashboard":
			_, _ = w.Write([]byte(`{"total_projects":9}`))
		default:
			_, _ = w.Write([]byte(`[{"id":1}]`))
		}
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	const n = 30
	var wg sync.WaitGroup
	errs := make(chan error, n*3)
	for i := 0; i < n; i++ {
		wg.Add(3)
		name := fmt.Sprintf("project-%d", i)
		go func() {
			defer wg.Done()
			ad, err := c.CreateAd(context.Background(), map[string]string{"project_name": name})
			if err != nil {
				errs <- err
				return
			}
			if ad.ProjectName != name {
				errs <- fmt.Errorf("got %q want %q", ad.ProjectName, name)
			}
		}()
		go func() {
			defer wg.Done()
			if ads, err := c.GetAds(context.Background()); err != nil || len(ads) != 1 {
				errs <- fmt.Errorf("get ads: %v %v", ads, err)
			}
		}()
		go func() {
			defer wg.Done()
			if s, err := c.GetDashboardStats(context.Background()); err != nil || s.TotalProjects != 9 {
				errs <- fmt.Errorf("dashboard: %v %v", s, err)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
