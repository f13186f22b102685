package shardqueue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestShardExecutor_Retry(t *testing.T) {
	handled := make(chan error, 1)
	ex := newExec(Config{Shards: 1, QueueSize: 10, MaxAttempts: 3, BaseBackoff: 5 * time.Millisecond,
		ErrorHandler: func(err error) { handled <- err }})
	defer ex.Stop()

	var attempts int32
	_ = ex.Submit(context.Background(), "k", JobFunc(func(ctx context.Context) error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return errors.New("transient")
		}
		return nil
	}))
	if err := ex.Barrier(context.Background(), "k"); err != nil {
		t.Fatalf("barrier: %v", err)
	}
	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
	select {
	case err := <-handled:
		t.Fatalf("error handler should not fire on eventual success: %v", err)
	default:
	}
}

func TestShardExecutor_RetriesExhausted(t *testing.T) {
	handled := make(chan error, 1)
	ex := newExec(Config{Shards: 1, MaxAttempts: 2, BaseBackoff: time.Millisecond,
		ErrorHandler: func(err error) { handled <- err }})
	defer ex.Stop()

	sentinel := errors.New("still down")
	var attempts int32
	_ = ex.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return sentinel
	}))
	_ = ex.Barrier(context.Background(), "k")

	if got := atomic.LoadInt32(&attempts); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
	if err := <-handled; !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel in handler, got %v", err)
	}
}

func TestShardExecutor_NonRetryableFailsFast(t *testing.T) {
	permanent := errors.New("bad request")
	handled := make(chan error, 1)
	ex := newExec(Config{Shards: 1, MaxAttempts: 5, BaseBackoff: time.Millisecond,
		ShouldRetry:  func(err error) bool { return !errors.Is(err, permanent) },
		ErrorHandler: func(err error) { handled <- err }})
	defer ex.Stop()

	var attempts int32
	_ = ex.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return permanent
	}))
	_ = ex.Barrier(context.Background(), "k")

	if got := atomic.LoadInt32(&attempts); got != 1 {
		t.Fatalf("expected a single attempt, got %d", got)
	}
	if err := <-handled; !errors.Is(err, permanent) {
		t.Fatalf("unexpected handler error %v", err)
	}
}

func TestShardExecutor_CancelledJobSkipsRun(t *testing.T) {
	handled := make(chan error, 1)
	ex := newExec(Config{Shards: 1, ErrorHandler: func(err error) { handled <- err }})
	defer ex.Stop()

	block := make(chan struct{})
	_ = ex.Submit(context.Background(), "k", JobFunc(func(context.Context) error { <-block; return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	var ran int32
	_ = ex.Submit(ctx, "k", JobFunc(func(context.Context) error {
		atomic.StoreInt32(&ran, 1)
		return nil
	}))
	cancel()
	close(block)

	_ = ex.Barrier(context.Background(), "k")
	if atomic.LoadInt32(&ran) == 1 {
		t.Fatal("job with cancelled context should not run")
	}
	if err := <-handled; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
