package shardqueue

import "context"

// Job is a unit of work executed by a ShardExecutor.
type Job interface {
	Run(ctx context.Context) error
}

// JobFunc adapts a function to a Job.
type JobFunc func(ctx context.Context) error

// Run implements Job for JobFunc. A nil JobFunc reports ErrNilJob.
func (f JobFunc) Run(ctx context.Context) error {
	if f == nil {
		return ErrNilJob
	}
	return f(ctx)
}
