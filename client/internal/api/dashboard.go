package api

import (
	"context"
	"encoding/json"
	"net/http"

	clienterrors "github.com/diamondjirapat/mango-reach-management-mockup/client/internal/errors"
	"github.com/diamondjirapat/mango-reach-management-mockup/client/internal/types"
)

// GetDashboardStats issues GET {baseURL}/dashboard.
func GetDashboardStats(ctx context.Context, httpClient HTTPClient, baseURL string) (*types.DashboardStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint(baseURL, "/dashboard"), nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := clienterrors.CheckResponse("get dashboard stats", resp); err != nil {
		return nil, err
	}

	var stats types.DashboardStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
