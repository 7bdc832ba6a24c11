// Package parallel provides worker-pool variants of the collection
// operations for CPU-bound callbacks.
//
// Each function fans element-wise work across a pool bounded by GOMAXPROCS
// and fans the results back in. There is no shared mutable state beyond
// per-index result slots, and order is preserved for order-preserving
// operations:
//
//	squares := parallel.Map(numbers, func(n int) int { return n * n })
//
// Callbacks are pure functions of the element; there is no cancellation,
// timeout, or retry. For I/O-bound work with contexts and errors, use the
// async package instead. Callback panics are never recovered.
package parallel
