package collections

// Find returns the first element for which predicate returns true.
// Returns the zero value and false when no element matches.
func Find[T any](items []T, predicate func(T) bool) (T, bool) {
	for _, item := range items {
		if predicate(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindLast returns the last element for which predicate returns true.
// Returns the zero value and false when no element matches.
func FindLast[T any](items []T, predicate func(T) bool) (T, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if predicate(items[i]) {
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element satisfying predicate, or -1.
func FindIndex[T any](items []T, predicate func(T) bool) int {
	for i, item := range items {
		if predicate(item) {
			return i
		}
	}
	return -1
}

// Includes reports whether items contains value.
func Includes[T comparable](items []T, value T) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

// Every reports whether predicate returns true for all elements.
// It is vacuously true for an empty slice.
func Every[T any](items []T, predicate func(T) bool) bool {
	for _, item := range items {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// Some reports whether predicate returns true for at least one element.
func Some[T any](items []T, predicate func(T) bool) bool {
	for _, item := range items {
		if predicate(item) {
			return true
		}
	}
	return false
}

// CountBy counts the elements grouped by the key returned by iteratee.
//
//	counts := collections.CountBy([]string{"one", "two", "three"},
//	    func(s string) int { return len(s) })
//	// → map[3:2 5:1]
func CountBy[T any, K comparable](items []T, iteratee func(T) K) map[K]int {
	out := make(map[K]int)
	for _, item := range items {
		out[iteratee(item)]++
	}
	return out
}

// Partition splits items into two slices: the first holds elements for which
// predicate returns true, the second the rest. Relative order is preserved
// in both.
func Partition[T any](items []T, predicate func(T) bool) (pass, fail []T) {
	pass = make([]T, 0)
	fail = make([]T, 0)
	for _, item := range items {
		if predicate(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}
