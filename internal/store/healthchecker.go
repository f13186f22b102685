package store

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/diamondjirapat/mango-reach-management-mockup/internal/health"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/model"
	"github.com/rs/zerolog"
)

// StoreHealthChecker monitors store health via periodic checks.
type StoreHealthChecker struct {
	store        Store
	healthy      atomic.Int32
	log          zerolog.Logger
	checkTimeout time.Duration
}

// NewStoreHealthChecker creates a new store health checker.
func NewStoreHealthChecker(store Store, log zerolog.Logger, checkTimeout time.Duration) *StoreHealthChecker {
	hc := &StoreHealthChecker{
		store:        store,
		log:          log,
		checkTimeout: checkTimeout,
	}
	hc.healthy.Store(0) // start unhealthy until first successful check
	return hc
}

// Name returns the checker name.
func (hc *StoreHealthChecker) Name() string {
	return "store"
}

// IsHealthy returns the cached health status (non-blocking).
func (hc *StoreHealthChecker) IsHealthy() bool {
	return hc.healthy.Load() == 1
}

// Start begins periodic health checking.
func (hc *StoreHealthChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	hc.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hc.Check(ctx)
		}
	}
}

// Check runs one health check with the configured timeout and caches the result.
func (hc *StoreHealthChecker) Check(ctx context.Context) bool {
	to := hc.checkTimeout
	if to <= 0 {
		to = 2 * time.Second
	}
	checkCtx, cancel := context.WithTimeout(ctx, to)
	defer cancel()

	if err := hc.ping(checkCtx); err != nil {
		hc.log.Error().Stack().Str("checker", hc.Name()).Err(err).Msg("store health check failed")
		hc.healthy.Store(0)
		return false
	}
	hc.healthy.Store(1)
	return true
}

// ping prefers a specialized HealthPing and falls back to a one-row read.
func (hc *StoreHealthChecker) ping(ctx context.Context) error {
	if p, ok := hc.store.(health.HealthPinger); ok {
		return p.HealthPing(ctx)
	}
	_, err := hc.store.Ads().List(ctx, model.ListAdsRequest{Limit: 1})
	return err
}
