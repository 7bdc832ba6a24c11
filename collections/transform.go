package collections

import (
	"cmp"
	"sort"
)

// GroupBy groups elements by the key returned by iteratee.
// Within each group, the original relative order is preserved.
//
//	byDept := collections.GroupBy(employees,
//	    func(e Employee) string { return e.Department })
func GroupBy[T any, K comparable](items []T, iteratee func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := iteratee(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// KeyBy builds a map keyed by the value extracted by iteratee.
// When multiple elements share the same key, the last one wins.
//
//	byID := collections.KeyBy(users, func(u User) int { return u.ID })
func KeyBy[T any, K comparable](items []T, iteratee func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[iteratee(item)] = item
	}
	return out
}

// Invoke applies method to every element and collects the results.
// It mirrors the lodash invokeMap operation for a statically-typed receiver.
func Invoke[T, U any](items []T, method func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = method(item)
	}
	return out
}

// SortBy returns a copy of items sorted in ascending order by the key
// extracted by iteratee. The sort is stable: elements with equal keys keep
// their original order.
func SortBy[T any, K cmp.Ordered](items []T, iteratee func(T) K) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return iteratee(out[i]) < iteratee(out[j])
	})
	return out
}

// OrderBy is like [SortBy] but allows specifying the sort direction.
func OrderBy[T any, K cmp.Ordered](items []T, iteratee func(T) K, ascending bool) []T {
	if ascending {
		return SortBy(items, iteratee)
	}
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return iteratee(out[j]) < iteratee(out[i])
	})
	return out
}
