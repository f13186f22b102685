package store

import (
	"context"

	"github.com/diamondjirapat/mango-reach-management-mockup/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (sqlite, postgres).
type Store interface {
	Ads() Ads
	Close() error
}

type Ads interface {
	// Create persists ad and returns it with its assigned ID.
	Create(ctx context.Context, ad *model.Ad) (*model.Ad, error)
	// List returns ads ordered by ID, skipping req.Skip rows and returning at most req.Limit.
	List(ctx context.Context, req model.ListAdsRequest) ([]*model.Ad, error)
	// Stats aggregates all ads. An empty table yields zero values.
	Stats(ctx context.Context) (*model.DashboardStats, error)
}
