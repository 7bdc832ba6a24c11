package collections

import (
	"encoding/json"
	"fmt"
)

// Collection is a generic, immutable-by-default wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged. This design is goroutine-safe for reads
// (multiple goroutines may read the same collection concurrently) and avoids
// accidental aliasing bugs in pipelines.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Empty[int]()
//
// # Method chaining
//
//	result := collections.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    SortBy(func(n int) float64 { return float64(n) }).
//	    Take(2)
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the element type or require a comparable key are
// exposed as package-level functions only:
//
//	doubled := collections.Map(c.All(), func(n int) string {
//	    return strconv.Itoa(n * 2)
//	})
//	groups := collections.GroupBy(c.All(), func(n int) string {
//	    if n%2 == 0 { return "even" }
//	    return "odd"
//	})
//
// Every eager transformation on a Collection materializes a new slice. For a
// deferred pipeline over a large input, build a chain.Chain instead and
// materialize once.
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// Size returns the number of items in the collection.
func (c *Collection[T]) Size() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// At returns the item at index, or [ErrIndexOutOfRange] annotated with the
// offending index and the collection size.
func (c *Collection[T]) At(index int) (T, error) {
	item, ok := c.Get(index)
	if !ok {
		return item, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, len(c.items))
	}
	return item, nil
}

// First returns the first item.
// Returns the zero value and false when the collection is empty.
func (c *Collection[T]) First() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[0], true
}

// FirstOrFail returns the first item, or [ErrEmptyCollection].
func (c *Collection[T]) FirstOrFail() (T, error) {
	item, ok := c.First()
	if !ok {
		return item, ErrEmptyCollection
	}
	return item, nil
}

// Last returns the last item.
// Returns the zero value and false when the collection is empty.
func (c *Collection[T]) Last() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[len(c.items)-1], true
}

// LastOrFail returns the last item, or [ErrEmptyCollection].
func (c *Collection[T]) LastOrFail() (T, error) {
	item, ok := c.Last()
	if !ok {
		return item, ErrEmptyCollection
	}
	return item, nil
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls iteratee for every item, in order.
func (c *Collection[T]) Each(iteratee func(T)) {
	Each(c.items, iteratee)
}

// EachRight calls iteratee for every item, from last to first.
func (c *Collection[T]) EachRight(iteratee func(T)) {
	EachRight(c.items, iteratee)
}

// Tap calls fn(c) for side-effects (e.g. logging or debugging) and returns
// c unchanged for further chaining.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Query
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first item satisfying predicate.
// Returns the zero value and false when no item matches.
func (c *Collection[T]) Find(predicate func(T) bool) (T, bool) {
	return Find(c.items, predicate)
}

// FindOrFail returns the first item satisfying predicate, or
// [ErrNoMatchingItems].
func (c *Collection[T]) FindOrFail(predicate func(T) bool) (T, error) {
	item, ok := Find(c.items, predicate)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// FindLast returns the last item satisfying predicate.
// Returns the zero value and false when no item matches.
func (c *Collection[T]) FindLast(predicate func(T) bool) (T, bool) {
	return FindLast(c.items, predicate)
}

// FindIndex returns the index of the first item satisfying predicate, or -1.
func (c *Collection[T]) FindIndex(predicate func(T) bool) int {
	return FindIndex(c.items, predicate)
}

// Every reports whether predicate holds for all items.
func (c *Collection[T]) Every(predicate func(T) bool) bool {
	return Every(c.items, predicate)
}

// Some reports whether predicate holds for at least one item.
func (c *Collection[T]) Some(predicate func(T) bool) bool {
	return Some(c.items, predicate)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which predicate
// returns true.
func (c *Collection[T]) Filter(predicate func(T) bool) *Collection[T] {
	return &Collection[T]{items: Filter(c.items, predicate)}
}

// Reject returns a new collection with items for which predicate returns
// true removed. It is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(predicate func(T) bool) *Collection[T] {
	return &Collection[T]{items: Reject(c.items, predicate)}
}

// Map returns a new collection with every item transformed by iteratee.
//
// Methods cannot introduce type parameters, so this form is restricted to
// T → T transforms. For T → U use the package-level [Map].
func (c *Collection[T]) Map(iteratee func(T) T) *Collection[T] {
	return &Collection[T]{items: Map(c.items, iteratee)}
}

// Reduce folds the collection into a single value of the element type.
// For reductions that change the type, use the package-level [Reduce].
func (c *Collection[T]) Reduce(iteratee func(acc, item T) T, initial T) T {
	return Reduce(c.items, iteratee, initial)
}

// ReduceRight is like [Collection.Reduce] but folds from the last item to
// the first.
func (c *Collection[T]) ReduceRight(iteratee func(acc, item T) T, initial T) T {
	return ReduceRight(c.items, iteratee, initial)
}

// Partition splits the collection into two:
// the first contains items for which predicate returns true; the second the
// rest.
func (c *Collection[T]) Partition(predicate func(T) bool) (*Collection[T], *Collection[T]) {
	pass, fail := Partition(c.items, predicate)
	return &Collection[T]{items: pass}, &Collection[T]{items: fail}
}

// SortBy returns a new collection sorted in ascending order by the float64
// key extracted by iteratee. The sort is stable.
func (c *Collection[T]) SortBy(iteratee func(T) float64) *Collection[T] {
	return &Collection[T]{items: SortBy(c.items, iteratee)}
}

// SortByDesc returns a new collection sorted in descending order by iteratee.
func (c *Collection[T]) SortByDesc(iteratee func(T) float64) *Collection[T] {
	return &Collection[T]{items: OrderBy(c.items, iteratee, false)}
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	n := len(c.items)
	out := make([]T, n)
	for i, item := range c.items {
		out[n-1-i] = item
	}
	return &Collection[T]{items: out}
}

// Take returns at most the first n items.
func (c *Collection[T]) Take(n int) *Collection[T] {
	if n < 0 {
		n = 0
	}
	if n > len(c.items) {
		n = len(c.items)
	}
	return From(c.items[:n])
}

// Skip returns a new collection without the first n items.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	if n < 0 {
		n = 0
	}
	if n >= len(c.items) {
		return Empty[T]()
	}
	return From(c.items[n:])
}

// ─────────────────────────────────────────────────────────────────────────────
// Sampling
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a new collection with items in a randomly shuffled order.
func (c *Collection[T]) Shuffle() *Collection[T] {
	return &Collection[T]{items: Shuffle(c.items)}
}

// Sample returns a random item from the collection.
// Returns the zero value and false when the collection is empty.
func (c *Collection[T]) Sample() (T, bool) {
	return Sample(c.items)
}

// SampleSize returns a new collection with up to n randomly selected items,
// without replacement.
func (c *Collection[T]) SampleSize(n int) *Collection[T] {
	return &Collection[T]{items: SampleSize(c.items, n)}
}
