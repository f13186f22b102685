package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/diamondjirapat/mango-reach-management-mockup/client"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/logger"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/mockdata"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/shardqueue"
)

type seedOptions struct {
	count   int
	workers int
	seed    uint64
}

// seedResult is printed once seeding finishes.
type seedResult struct {
	Requested int      `json:"requested"`
	Created   int64    `json:"created"`
	Failed    int64    `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

func newSeedCmd(c *cli) *cobra.Command {
	var opts seedOptions
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create randomly generated ads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := c.client()
			if err != nil {
				return err
			}
			log := logger.NewWithWriter("adsctl", c.errOut)
			res, err := runSeed(cmd.Context(), cl, opts, log)
			if perr := printJSON(c.out, res); perr != nil {
				return perr
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&opts.count, "count", "n", 50, "Number of ads to create")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 4, "Parallel shards")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	return cmd
}

// runSeed generates opts.count ads and creates them through cl. Ads sharing a
// project ID are created in order; retryable failures back off and retry.
func runSeed(ctx context.Context, cl *client.Client, opts seedOptions, log zerolog.Logger) (seedResult, error) {
	res := seedResult{Requested: opts.count}
	if opts.count <= 0 {
		return res, fmt.Errorf("--count must be positive")
	}

	cfg, err := shardqueue.LoadConfig()
	if err != nil {
		return res, fmt.Errorf("seed config: %w", err)
	}
	if opts.workers > 0 {
		cfg.Shards = opts.workers
	}
	if cfg.QueueSize < opts.count {
		cfg.QueueSize = opts.count
	}
	cfg.ShouldRetry = client.IsRetryable

	var (
		created, failed atomic.Int64
		mu              sync.Mutex
	)
	cfg.ErrorHandler = func(err error) {
		failed.Add(1)
		mu.Lock()
		res.Errors = append(res.Errors, err.Error())
		mu.Unlock()
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))

	exec := shardqueue.NewShardExecutor(cfg, log)
	defer exec.Stop()

	var submitErr error
	keys := make(map[string]struct{})
	for _, ad := range mockdata.Generate(rng, opts.count) {
		job := shardqueue.JobFunc(func(ctx context.Context) error {
			if _, err := cl.CreateAd(ctx, ad); err != nil {
				return err
			}
			created.Add(1)
			return nil
		})
		if err := exec.Submit(ctx, ad.ProjectID, job); err != nil {
			submitErr = fmt.Errorf("submit %s: %w", ad.ProjectID, err)
			break
		}
		keys[ad.ProjectID] = struct{}{}
	}
	// Stop drains without retrying, so wait for every key's jobs to finish first.
	for key := range keys {
		if err := exec.Barrier(ctx, key); err != nil && submitErr == nil {
			submitErr = fmt.Errorf("wait for %s: %w", key, err)
		}
	}
	exec.Stop()

	res.Created = created.Load()
	res.Failed = failed.Load()
	log.Info().
		Int("requested", res.Requested).
		Int64("created", res.Created).
		Int64("failed", res.Failed).
		Uint64("seed", seed).
		Msg("seed finished")

	if submitErr != nil {
		return res, submitErr
	}
	if res.Failed > 0 {
		return res, errors.New("some ads could not be created")
	}
	return res, nil
}
