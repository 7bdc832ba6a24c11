package async

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// ExecuteSequential applies operation to every element one at a time, in
// slice order, and returns the results. Evaluation stops at the first error
// or context cancellation.
func ExecuteSequential[T, R any](ctx context.Context, items []T, operation func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := operation(ctx, item)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ExecuteConcurrent applies operation to every element with at most limit
// calls in flight, returning the results in the original order. Returns
// [ErrInvalidConcurrency] when limit is below one. The first error cancels
// outstanding work and is returned.
func ExecuteConcurrent[T, R any](ctx context.Context, items []T, operation func(context.Context, T) (R, error), limit int) ([]R, error) {
	if limit < 1 {
		return nil, ErrInvalidConcurrency
	}
	out := make([]R, len(items))
	sem := semaphore.NewWeighted(int64(limit))
	g, ctx := errgroup.WithContext(ctx)
	var acquireErr error
	for i, item := range items {
		if acquireErr = sem.Acquire(ctx, 1); acquireErr != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			r, err := operation(ctx, item)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if acquireErr != nil {
		return nil, acquireErr
	}
	return out, nil
}
