package collections

// Each calls iteratee once per element, in order.
func Each[T any](items []T, iteratee func(T)) {
	for _, item := range items {
		iteratee(item)
	}
}

// ForEach is an alias for [Each].
func ForEach[T any](items []T, iteratee func(T)) { Each(items, iteratee) }

// EachRight calls iteratee once per element, from last to first.
func EachRight[T any](items []T, iteratee func(T)) {
	for i := len(items) - 1; i >= 0; i-- {
		iteratee(items[i])
	}
}

// Map applies iteratee to every element and returns a new slice.
//
//	doubled := collections.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
func Map[T, U any](items []T, iteratee func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = iteratee(item)
	}
	return out
}

// Filter returns the elements for which predicate returns true, preserving
// their relative order.
func Filter[T any](items []T, predicate func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if predicate(item) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which predicate returns false.
// It is the complement of [Filter].
func Reject[T any](items []T, predicate func(T) bool) []T {
	return Filter(items, func(item T) bool { return !predicate(item) })
}

// Reduce folds items into a single value of type U, left to right.
//
//	sum := collections.Reduce([]int{1, 2, 3, 4}, func(acc, n int) int { return acc + n }, 0)
func Reduce[T, U any](items []T, iteratee func(U, T) U, initial U) U {
	acc := initial
	for _, item := range items {
		acc = iteratee(acc, item)
	}
	return acc
}

// ReduceRight folds items into a single value of type U, right to left.
func ReduceRight[T, U any](items []T, iteratee func(U, T) U, initial U) U {
	acc := initial
	for i := len(items) - 1; i >= 0; i-- {
		acc = iteratee(acc, items[i])
	}
	return acc
}

// FlatMap applies iteratee to every element (producing a []U per element)
// and flattens the results one level.
func FlatMap[T, U any](items []T, iteratee func(T) []U) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		out = append(out, iteratee(item)...)
	}
	return out
}
