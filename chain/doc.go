// Package chain provides lazy, fluent pipelines over slices.
//
// A [Chain] records operations (map, filter, take, skip, reverse) without
// running them; the pipeline executes once, in append order, when a terminal
// call materializes it:
//
//	result := chain.New([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Map(func(n int) int { return n * 3 }).
//	    Take(3).
//	    Value() // → [6 12 18]
//
// Operations apply strictly in the order they were appended; the pipeline is
// never reordered or fused. Each step materializes a new slice before the
// next step runs.
//
// # Consume-once
//
// A chain is consumed by exactly one terminal call ([Chain.Value] or
// [Chain.Collection]; [AsyncChain.Await] or [AsyncChain.Collection]). Any
// builder or terminal call on a consumed chain panics: silent reuse would
// re-run user callbacks against an already-spent pipeline, which is always a
// caller bug.
//
// # Asynchronous pipelines
//
// [AsyncChain] has the same shape, with map and filter steps that take a
// context and may fail:
//
//	result, err := chain.NewAsync([]int{1, 2, 3}).
//	    MapAsync(func(ctx context.Context, n int) (int, error) {
//	        return lookup(ctx, n)
//	    }).
//	    Await(ctx)
//
// Await walks the operations in append order. Within a map or filter step,
// elements are processed one at a time, in slice order, each call completed
// before the next begins, so an async pipeline yields exactly the output of
// the equivalent synchronous one. Take, skip, and reverse steps run
// synchronously. The first error (or context cancellation, checked between
// element calls) aborts evaluation.
//
// Panics raised by user callbacks are never recovered; they unwind through
// the terminal call unchanged.
package chain
