package chain

import "context"

// operation is a single recorded step of a synchronous pipeline.
// One implementing type exists per operation kind; each owns the callback
// it was built with for the lifetime of the chain.
type operation[T any] interface {
	apply(items []T) []T
}

type mapOp[T any] struct {
	iteratee func(T) T
}

func (op mapOp[T]) apply(items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = op.iteratee(item)
	}
	return out
}

type filterOp[T any] struct {
	predicate func(T) bool
}

func (op filterOp[T]) apply(items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if op.predicate(item) {
			out = append(out, item)
		}
	}
	return out
}

type takeOp[T any] struct {
	n int
}

func (op takeOp[T]) apply(items []T) []T {
	n := op.n
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

type skipOp[T any] struct {
	n int
}

func (op skipOp[T]) apply(items []T) []T {
	n := op.n
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[n:]
}

type reverseOp[T any] struct{}

func (reverseOp[T]) apply(items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}

// asyncOperation is a single recorded step of an asynchronous pipeline.
type asyncOperation[T any] interface {
	apply(ctx context.Context, items []T) ([]T, error)
}

type asyncMapOp[T any] struct {
	iteratee func(context.Context, T) (T, error)
}

func (op asyncMapOp[T]) apply(ctx context.Context, items []T) ([]T, error) {
	out := make([]T, len(items))
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		mapped, err := op.iteratee(ctx, item)
		if err != nil {
			return nil, err
		}
		out[i] = mapped
	}
	return out, nil
}

type asyncFilterOp[T any] struct {
	predicate func(context.Context, T) (bool, error)
}

func (op asyncFilterOp[T]) apply(ctx context.Context, items []T) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		keep, err := op.predicate(ctx, item)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, item)
		}
	}
	return out, nil
}

// syncStep adapts a synchronous operation (take, skip, reverse) into an
// asynchronous pipeline.
type syncStep[T any] struct {
	op operation[T]
}

func (s syncStep[T]) apply(_ context.Context, items []T) ([]T, error) {
	return s.op.apply(items), nil
}
