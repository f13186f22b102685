// Package shardqueue provides a lightweight sharded work-queue that guarantees
// FIFO order *per key* while allowing parallelism across shards.
//
// Contract: callers must not invoke Submit concurrently for the same key.
// FIFO ordering relies on that external serialisation.
package shardqueue

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

type queuedJob struct {
	ctx context.Context
	job Job
}

// ShardExecutor executes Jobs on worker goroutines partitioned by a stable hash
// of the key (e.g. a project ID). FIFO ordering is preserved within a shard;
// jobs with different keys may run in parallel.
type ShardExecutor struct {
	cfg    Config
	log    zerolog.Logger
	queues []chan queuedJob // len == cfg.Shards

	// mu is held shared by Submit for the whole enqueue attempt; Stop takes it
	// exclusively before releasing the workers, so every accepted job is in a
	// queue by the time the queues are drained.
	mu      sync.RWMutex
	closing chan struct{} // closed first in Stop(); wakes blocked submitters
	done    chan struct{} // closed once no Submit is in flight; workers drain
	closed  uint32        // 0 → running, 1 → closed

	wg sync.WaitGroup
}

// NewShardExecutor constructs the executor and starts its shard workers.
// Zero-valued Config fields take their defaults.
func NewShardExecutor(cfg Config, log zerolog.Logger) *ShardExecutor {
	cfg = cfg.withDefaults()

	p := &ShardExecutor{
		cfg:     cfg,
		log:     log.With().Str("component", "shardqueue").Logger(),
		queues:  make([]chan queuedJob, cfg.Shards),
		closing: make(chan struct{}),
		done:    make(chan struct{}),
	}
	for i := 0; i < cfg.Shards; i++ {
		ch := make(chan queuedJob, cfg.QueueSize)
		p.queues[i] = ch
		p.wg.Add(1)
		go p.runWorker(i, ch)
	}
	return p
}

// Submit enqueues job for the shard derived from key.
//
//   - Returns nil on success.
//   - Returns ErrExecutorClosed if the executor is stopped.
//   - Returns *QueueFullError (errors.Is ErrQueueFull) if the shard is still
//     full after EnqueueTimeout.
//   - Returns ctx.Err() if the caller-provided context is cancelled first.
//
// A nil return guarantees the job runs, even when Stop is called concurrently.
func (p *ShardExecutor) Submit(ctx context.Context, key string, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if atomic.LoadUint32(&p.closed) == 1 {
		return ErrExecutorClosed
	}

	qj := queuedJob{ctx: ctx, job: job}
	shard := p.shardFor(key)
	ch := p.queues[shard]

	timer := time.NewTimer(p.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case ch <- qj:
		submissionsTotal.WithLabelValues(labelFor(shard)).Inc()
		return nil

	case <-p.closing: // Stop() may be called while waiting for space
		return ErrExecutorClosed

	case <-ctx.Done():
		return ctx.Err()

	case <-timer.C:
		queueFullTotal.WithLabelValues(labelFor(shard)).Inc()
		return &QueueFullError{
			Shard:    shard,
			Length:   len(ch),
			Capacity: cap(ch),
		}
	}
}

// Barrier enqueues a no-op job on the shard for key and waits until it runs,
// ensuring all previously submitted jobs for that key have completed.
func (p *ShardExecutor) Barrier(ctx context.Context, key string) error {
	done := make(chan struct{})
	j := JobFunc(func(context.Context) error {
		close(done)
		return nil
	})
	if err := p.Submit(ctx, key, j); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Stop signals every worker to finish draining its current queue, waits for
// them to terminate, and then returns. It is idempotent and safe for
// concurrent use.
func (p *ShardExecutor) Stop() {
	if !atomic.CompareAndSwapUint32(&p.closed, 0, 1) {
		return
	}

	p.log.Debug().Int("shards", p.cfg.Shards).Msg("stopping executor, draining shards")
	close(p.closing)

	// wait for in-flight Submits to either enqueue or give up
	p.mu.Lock()
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
	p.log.Debug().Msg("executor stopped, all queues drained")
}

// Close lets ShardExecutor satisfy io.Closer.
func (p *ShardExecutor) Close() error {
	p.Stop()
	return nil
}

// ------------------------- internals -------------------------

func (p *ShardExecutor) runWorker(idx int, ch <-chan queuedJob) {
	defer p.wg.Done()
	label := labelFor(idx)

	for {
		select {
		case qj := <-ch:
			if qj.job != nil {
				p.execute(idx, qj)
			}
			queueDepth.WithLabelValues(label).Set(float64(len(ch)))

		case <-p.done:
			// Drain remaining jobs, preserving FIFO, then exit. No retries while draining.
			drained := 0
			for {
				select {
				case qj := <-ch:
					if qj.job != nil {
						if err := p.runOnce(idx, qj); err != nil {
							p.fail(idx, err)
						}
						drained++
					}
				default:
					if drained > 0 {
						p.log.Debug().Int("shard", idx).Int("drained", drained).Msg("worker drained remaining jobs")
					}
					queueDepth.WithLabelValues(label).Set(0)
					return
				}
			}
		}
	}
}

// execute runs qj with exponential backoff between retryable failures.
func (p *ShardExecutor) execute(idx int, qj queuedJob) {
	// Honour caller context so a cancelled job doesn't stall the shard.
	if err := qj.ctx.Err(); err != nil {
		p.fail(idx, err)
		return
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.cfg.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = p.cfg.MaxInterval
	exp.MaxElapsedTime = 0
	exp.Reset()

	for attempt := 1; ; attempt++ {
		err := p.runOnce(idx, qj)
		if err == nil {
			return
		}
		if !p.shouldRetry(err) || attempt >= p.cfg.MaxAttempts {
			p.fail(idx, err)
			return
		}

		wait := exp.NextBackOff()
		p.log.Debug().Err(err).Int("shard", idx).Int("attempt", attempt).Dur("wait", wait).Msg("job failed, retrying")
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-p.done:
			timer.Stop()
			p.fail(idx, err)
			return
		case <-qj.ctx.Done():
			timer.Stop()
			p.fail(idx, qj.ctx.Err())
			return
		}
	}
}

// runOnce runs a single attempt, converting a panic into an error so one bad
// job cannot kill the shard's worker.
func (p *ShardExecutor) runOnce(idx int, qj queuedJob) (err error) {
	start := time.Now()
	defer func() {
		runDuration.WithLabelValues(labelFor(idx)).Observe(time.Since(start).Seconds())
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Int("shard", idx).Msg("job panic")
			err = &PanicError{Value: r}
		}
	}()
	return qj.job.Run(qj.ctx)
}

func (p *ShardExecutor) shouldRetry(err error) bool {
	if _, ok := err.(*PanicError); ok {
		return false
	}
	if p.cfg.ShouldRetry == nil {
		return true
	}
	return p.cfg.ShouldRetry(err)
}

func (p *ShardExecutor) fail(idx int, err error) {
	failuresTotal.WithLabelValues(labelFor(idx)).Inc()
	if err == nil || p.cfg.ErrorHandler == nil {
		return
	}
	// Guard against panics in the user-supplied handler.
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Msg("error handler panic")
		}
	}()
	p.cfg.ErrorHandler(err)
}

func (p *ShardExecutor) shardFor(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(p.cfg.Shards))
}
