// Package resource bounds how many index queries run at once and how
// fast new ones may start. A built index is safe to query from many
// goroutines concurrently; this package gives callers a ready-made,
// bounded way to do that instead of hand-rolling a worker pool per
// caller.
package resource

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config bounds a QueryExecutor's resource usage.
type Config struct {
	// MaxConcurrentQueries caps the number of queries in flight at
	// once. If 0, defaults to 1 (queries run one at a time).
	MaxConcurrentQueries int64

	// QueriesPerSecond rate-limits how often a new query may start.
	// If 0, unlimited.
	QueriesPerSecond float64
}

// QueryExecutor runs a batch of independent queries concurrently,
// bounded by Config.
type QueryExecutor struct {
	sem     *semaphore.Weighted
	limiter *rate.Limiter
}

// NewQueryExecutor creates a QueryExecutor from cfg.
func NewQueryExecutor(cfg Config) *QueryExecutor {
	if cfg.MaxConcurrentQueries <= 0 {
		cfg.MaxConcurrentQueries = 1
	}

	e := &QueryExecutor{
		sem: semaphore.NewWeighted(cfg.MaxConcurrentQueries),
	}

	if cfg.QueriesPerSecond > 0 {
		e.limiter = rate.NewLimiter(rate.Limit(cfg.QueriesPerSecond), int(cfg.MaxConcurrentQueries))
	}

	return e
}

// Run calls fn once per element of queries, bounded by e's concurrency
// and rate limits, and returns one result per query in the same order.
// It stops launching new work and returns the first error once any fn
// call fails or ctx is canceled.
func Run[Q, R any](ctx context.Context, e *QueryExecutor, queries []Q, fn func(context.Context, Q) (R, error)) ([]R, error) {
	results := make([]R, len(queries))

	g, gctx := errgroup.WithContext(ctx)

	for i, q := range queries {
		if err := e.sem.Acquire(gctx, 1); err != nil {
			if werr := g.Wait(); werr != nil {
				return nil, werr
			}
			return nil, err
		}

		if e.limiter != nil {
			if err := e.limiter.Wait(gctx); err != nil {
				e.sem.Release(1)
				if werr := g.Wait(); werr != nil {
					return nil, werr
				}
				return nil, err
			}
		}

		i, q := i, q
		g.Go(func() error {
			defer e.sem.Release(1)

			r, err := fn(gctx, q)
			if err != nil {
				return err
			}
			results[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
