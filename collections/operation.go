package collections

import "math/rand"

// Size returns the number of elements in items.
func Size[T any](items []T) int { return len(items) }

// Shuffle returns a copy of items in a randomly shuffled order.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns a random element from items.
// Returns the zero value and false when items is empty.
func Sample[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[rand.Intn(len(items))], true
}

// SampleSize returns up to n random elements from items, without
// replacement. When n >= len(items) a shuffled copy of the whole slice is
// returned; when n <= 0 the result is empty.
func SampleSize[T any](items []T, n int) []T {
	if n <= 0 || len(items) == 0 {
		return []T{}
	}
	out := Shuffle(items)
	if n < len(out) {
		out = out[:n]
	}
	return out
}
