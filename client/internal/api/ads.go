package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	clienterrors "github.com/diamondjirapat/mango-reach-management-mockup/client/internal/errors"
	"github.com/diamondjirapat/mango-reach-management-mockup/client/internal/types"
)

// ListAds issues GET {baseURL}/ads.
func ListAds(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.Ad, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint(baseURL, "/ads"), nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := clienterrors.CheckResponse("get ads", resp); err != nil {
		return nil, err
	}

	var ads []types.Ad
	if err := json.NewDecoder(resp.Body).Decode(&ads); err != nil {
		return nil, err
	}
	return ads, nil
}

// CreateAd issues POST {baseURL}/ads with ad encoded as JSON. The payload is
// not inspected; whatever the caller passes is what the server receives.
func CreateAd(ctx context.Context, httpClient HTTPClient, baseURL string, ad any) (*types.Ad, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(ad)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint(baseURL, "/ads"), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := clienterrors.CheckResponse("create ad", resp); err != nil {
		return nil, err
	}

	var created types.Ad
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}
