package workers

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Pool runs workers with at most limit of them in flight.
type Pool struct {
	limit int
}

// NewPool returns a Pool. A limit below 1 is treated as 1, which runs the
// workers strictly one after another in submission order.
func NewPool(limit int) *Pool {
	if limit < 1 {
		limit = 1
	}
	return &Pool{limit: limit}
}

// Limit reports the configured concurrency.
func (p *Pool) Limit() int {
	return p.limit
}

// Run starts every worker and waits for all of them. Errors are collected
// per worker and joined; one failure does not cancel the others. ctx is
// passed through unchanged, so cancellation is up to the workers.
func (p *Pool) Run(ctx context.Context, workers ...Worker) error {
	errs := make([]error, len(workers))

	var g errgroup.Group
	g.SetLimit(p.limit)
	for i, w := range workers {
		i, w := i, w
		g.Go(func() error {
			errs[i] = w.Run(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}
