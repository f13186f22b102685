package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diamondjirapat/mango-reach-management-mockup/internal/model"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/store"
)

var sampleURL = "http://google.com/PROJ-1001"

// SampleAd is a fully populated ad used by adapter-specific tests.
var SampleAd = model.Ad{
	ProjectName: "Project Alpha 1",
	ProjectID:   "PROJ-1001",
	Source:      "Google",
	SourceURL:   &sampleURL,
	Type:        "online",
	ClickCount:  100,
	Cost:        50,
	Score:       28,
}

// Run exercises a minimal compliance suite against a store.Store implementation.
// makeStore must return a clean, isolated store with its schema in place.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	// Empty table
	stats, err := s.Ads().Stats(ctx)
	require.NoError(t, err, "Stats on empty store")
	assert.Equal(t, model.DashboardStats{}, *stats)

	lst, err := s.Ads().List(ctx, model.ListAdsRequest{Limit: 100})
	require.NoError(t, err, "List on empty store")
	assert.NotNil(t, lst, "List returns an empty slice, not nil")
	assert.Empty(t, lst)

	// Create
	first, err := s.Ads().Create(ctx, &SampleAd)
	require.NoError(t, err, "Create")
	assert.NotZero(t, first.ID)
	assert.Equal(t, SampleAd.ProjectID, first.ProjectID)
	require.NotNil(t, first.SourceURL)
	assert.Equal(t, sampleURL, *first.SourceURL)

	second, err := s.Ads().Create(ctx, &model.Ad{
		ProjectName: "Project Beta 2",
		ProjectID:   "PROJ-2002",
		Source:      "Billboard",
		ClickCount:  300,
		Cost:        150.5,
		Score:       16,
	})
	require.NoError(t, err, "Create without type or source_url")
	assert.Greater(t, second.ID, first.ID)
	assert.Equal(t, model.DefaultAdType, second.Type)
	assert.Nil(t, second.SourceURL)

	third, err := s.Ads().Create(ctx, &model.Ad{ProjectName: "Project Gamma 3", ProjectID: "PROJ-3003", Source: "TikTok", Type: "offline"})
	require.NoError(t, err)

	// List ordering and paging
	lst, err = s.Ads().List(ctx, model.ListAdsRequest{Limit: 100})
	require.NoError(t, err)
	require.Len(t, lst, 3)
	assert.Equal(t, []int64{first.ID, second.ID, third.ID}, []int64{lst[0].ID, lst[1].ID, lst[2].ID})
	assert.Equal(t, "offline", lst[2].Type)
	assert.Nil(t, lst[1].SourceURL)
	assert.Equal(t, *first, *lst[0])

	page, err := s.Ads().List(ctx, model.ListAdsRequest{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, second.ID, page[0].ID)

	page, err = s.Ads().List(ctx, model.ListAdsRequest{Skip: 5, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, page)

	page, err = s.Ads().List(ctx, model.ListAdsRequest{Limit: 0})
	require.NoError(t, err)
	assert.Empty(t, page, "limit 0 returns nothing")

	// Stats
	stats, err = s.Ads().Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalProjects)
	assert.EqualValues(t, 400, stats.TotalClicks)
	assert.InDelta(t, 200.5, stats.TotalCost, 1e-9)
	assert.InDelta(t, (28.0+16.0+0.0)/3, stats.AverageScore, 1e-9)
}
