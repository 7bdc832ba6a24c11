package async

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map applies iteratee to every element concurrently and returns the results
// in the original order. The first error cancels outstanding work and is
// returned.
func Map[T, U any](ctx context.Context, items []T, iteratee func(context.Context, T) (U, error)) ([]U, error) {
	out := make([]U, len(items))
	g, ctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			mapped, err := iteratee(ctx, item)
			if err != nil {
				return err
			}
			out[i] = mapped
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Filter evaluates predicate for every element concurrently and returns the
// elements for which it is true, preserving their relative order.
func Filter[T any](ctx context.Context, items []T, predicate func(context.Context, T) (bool, error)) ([]T, error) {
	keep := make([]bool, len(items))
	g, ctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			ok, err := predicate(ctx, item)
			if err != nil {
				return err
			}
			keep[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		if keep[i] {
			out = append(out, item)
		}
	}
	return out, nil
}

// Reduce folds items into a single value, left to right, awaiting each
// iteratee call before the next begins. The fold is inherently ordered, so
// there is no concurrent variant.
func Reduce[T, U any](ctx context.Context, items []T, iteratee func(context.Context, U, T) (U, error), initial U) (U, error) {
	acc := initial
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return acc, err
		}
		next, err := iteratee(ctx, acc, item)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}

// ForEach calls iteratee for every element concurrently and waits for all
// calls to finish. The first error cancels outstanding work and is returned.
func ForEach[T any](ctx context.Context, items []T, iteratee func(context.Context, T) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, item := range items {
		g.Go(func() error {
			return iteratee(ctx, item)
		})
	}
	return g.Wait()
}

// Find returns the first element, in slice order, for which predicate
// returns true. Elements are tested one at a time so the predicate is not
// called past the first match. Returns the zero value and false when no
// element matches.
func Find[T any](ctx context.Context, items []T, predicate func(context.Context, T) (bool, error)) (T, bool, error) {
	var zero T
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return zero, false, err
		}
		ok, err := predicate(ctx, item)
		if err != nil {
			return zero, false, err
		}
		if ok {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// Every reports whether predicate holds for all elements. Predicates run
// concurrently; the result is vacuously true for an empty slice.
func Every[T any](ctx context.Context, items []T, predicate func(context.Context, T) (bool, error)) (bool, error) {
	results, err := Map(ctx, items, predicate)
	if err != nil {
		return false, err
	}
	for _, ok := range results {
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Some reports whether predicate holds for at least one element. Predicates
// run concurrently.
func Some[T any](ctx context.Context, items []T, predicate func(context.Context, T) (bool, error)) (bool, error) {
	results, err := Map(ctx, items, predicate)
	if err != nil {
		return false, err
	}
	for _, ok := range results {
		if ok {
			return true, nil
		}
	}
	return false, nil
}
