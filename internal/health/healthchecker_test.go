package health

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeChecker struct {
	name    string
	healthy atomic.Bool
}

func (f *fakeChecker) Name() string                               { return f.name }
func (f *fakeChecker) IsHealthy() bool                            { return f.healthy.Load() }
func (f *fakeChecker) Start(ctx context.Context, _ time.Duration) { <-ctx.Done() }

func TestServiceHealthChecker_Evaluate(t *testing.T) {
	t.Parallel()
	a := &fakeChecker{name: "store"}
	b := &fakeChecker{name: "cache"}
	b.healthy.Store(true)
	h := NewServiceHealthChecker(zerolog.Nop(), a, b)

	assert.False(t, h.IsHealthy(), "starts unhealthy")
	assert.False(t, h.Evaluate())
	assert.Equal(t, []string{"store"}, h.Unhealthy())

	a.healthy.Store(true)
	assert.True(t, h.Evaluate())
	assert.True(t, h.IsHealthy())
	assert.Empty(t, h.Unhealthy())
}

func TestServiceHealthChecker_StartStopsOnCancel(t *testing.T) {
	t.Parallel()
	a := &fakeChecker{name: "store"}
	a.healthy.Store(true)
	h := NewServiceHealthChecker(zerolog.Nop(), a)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() { h.Start(ctx, 5*time.Millisecond); close(done) }()

	assert.Eventually(t, h.IsHealthy, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
