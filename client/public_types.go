package client

import "github.com/diamondjirapat/mango-reach-management-mockup/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	CreateAdRequest = types.CreateAdRequest

	// Domain entities
	Ad             = types.Ad
	DashboardStats = types.DashboardStats
)
