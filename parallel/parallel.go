package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// workers returns the pool size used by all fan-out operations.
func workers() int { return runtime.GOMAXPROCS(0) }

// Map applies iteratee to every element across the worker pool and returns
// the results in the original order.
func Map[T, U any](items []T, iteratee func(T) U) []U {
	out := make([]U, len(items))
	var g errgroup.Group
	g.SetLimit(workers())
	for i, item := range items {
		g.Go(func() error {
			out[i] = iteratee(item)
			return nil
		})
	}
	_ = g.Wait() // iteratees cannot fail
	return out
}

// Filter evaluates predicate for every element across the worker pool and
// returns the elements for which it is true, preserving relative order.
func Filter[T any](items []T, predicate func(T) bool) []T {
	keep := make([]bool, len(items))
	var g errgroup.Group
	g.SetLimit(workers())
	for i, item := range items {
		g.Go(func() error {
			keep[i] = predicate(item)
			return nil
		})
	}
	_ = g.Wait()
	out := make([]T, 0, len(items))
	for i, item := range items {
		if keep[i] {
			out = append(out, item)
		}
	}
	return out
}

// ForEach calls iteratee for every element across the worker pool and waits
// for all calls to finish. The iteratee must be safe for concurrent use.
func ForEach[T any](items []T, iteratee func(T)) {
	var g errgroup.Group
	g.SetLimit(workers())
	for _, item := range items {
		g.Go(func() error {
			iteratee(item)
			return nil
		})
	}
	_ = g.Wait()
}

// Reduce folds items in parallel: the input is split into one chunk per
// worker, each chunk is folded with fold starting from initial, and the
// partial results are combined left to right with combine.
//
// initial must be an identity for combine (e.g. 0 for addition, 1 for
// multiplication) and fold must be associative with combine, otherwise the
// result is unspecified.
func Reduce[T, U any](items []T, fold func(U, T) U, combine func(U, U) U, initial U) U {
	n := workers()
	if len(items) < n {
		n = len(items)
	}
	if n <= 1 {
		acc := initial
		for _, item := range items {
			acc = fold(acc, item)
		}
		return acc
	}
	partials := make([]U, n)
	for w := range partials {
		partials[w] = initial
	}
	chunk := (len(items) + n - 1) / n
	var g errgroup.Group
	for w := 0; w < n; w++ {
		lo := w * chunk
		hi := lo + chunk
		if lo >= len(items) {
			break
		}
		if hi > len(items) {
			hi = len(items)
		}
		g.Go(func() error {
			acc := initial
			for _, item := range items[lo:hi] {
				acc = fold(acc, item)
			}
			partials[w] = acc
			return nil
		})
	}
	_ = g.Wait()
	acc := partials[0]
	for _, p := range partials[1:] {
		acc = combine(acc, p)
	}
	return acc
}

// Find returns the first element, in slice order, for which predicate
// returns true. Predicates are evaluated across the worker pool; the result
// is deterministic regardless of scheduling. Returns the zero value and
// false when no element matches.
func Find[T any](items []T, predicate func(T) bool) (T, bool) {
	matches := make([]bool, len(items))
	var g errgroup.Group
	g.SetLimit(workers())
	for i, item := range items {
		g.Go(func() error {
			matches[i] = predicate(item)
			return nil
		})
	}
	_ = g.Wait()
	for i, ok := range matches {
		if ok {
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

// Every reports whether predicate holds for all elements.
// It is vacuously true for an empty slice.
func Every[T any](items []T, predicate func(T) bool) bool {
	_, found := Find(items, func(item T) bool { return !predicate(item) })
	return !found
}

// Some reports whether predicate holds for at least one element.
func Some[T any](items []T, predicate func(T) bool) bool {
	_, found := Find(items, predicate)
	return found
}
