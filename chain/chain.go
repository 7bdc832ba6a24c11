package chain

import "github.com/dvhns/golodash/collections"

// Chain is a lazy pipeline over a slice of T.
//
// Builder methods record one operation each and return the chain; nothing
// runs until [Chain.Value] (or [Chain.Collection]) materializes the result.
// A chain is consumed by its terminal call and must not be used afterwards;
// see the package documentation.
//
// Methods cannot introduce type parameters, so map steps are restricted to
// T → T transforms, matching the recorded-operation model: every step of a
// pipeline sees and produces elements of the same type.
type Chain[T any] struct {
	items    []T
	ops      []operation[T]
	consumed bool
}

// New creates a Chain wrapping a copy of items.
func New[T any](items []T) *Chain[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Chain[T]{items: dst}
}

func (c *Chain[T]) mustBuilding() {
	if c.consumed {
		panic("chain: use of consumed chain")
	}
}

// Map appends a transform step applied to every element.
func (c *Chain[T]) Map(iteratee func(T) T) *Chain[T] {
	c.mustBuilding()
	c.ops = append(c.ops, mapOp[T]{iteratee: iteratee})
	return c
}

// Filter appends a step keeping only elements for which predicate returns
// true, preserving relative order.
func (c *Chain[T]) Filter(predicate func(T) bool) *Chain[T] {
	c.mustBuilding()
	c.ops = append(c.ops, filterOp[T]{predicate: predicate})
	return c
}

// Take appends a step keeping the first min(n, len) elements.
func (c *Chain[T]) Take(n int) *Chain[T] {
	c.mustBuilding()
	c.ops = append(c.ops, takeOp[T]{n: n})
	return c
}

// Skip appends a step dropping the first min(n, len) elements.
func (c *Chain[T]) Skip(n int) *Chain[T] {
	c.mustBuilding()
	c.ops = append(c.ops, skipOp[T]{n: n})
	return c
}

// Reverse appends a step reversing the remaining element order.
func (c *Chain[T]) Reverse() *Chain[T] {
	c.mustBuilding()
	c.ops = append(c.ops, reverseOp[T]{})
	return c
}

// Value consumes the chain: starting from the source slice, it applies every
// recorded operation in append order and returns the final slice.
func (c *Chain[T]) Value() []T {
	c.mustBuilding()
	c.consumed = true
	result := c.items
	for _, op := range c.ops {
		result = op.apply(result)
	}
	c.items = nil
	c.ops = nil
	return result
}

// Collection consumes the chain and wraps the result in a
// collections.Collection.
func (c *Chain[T]) Collection() *collections.Collection[T] {
	return collections.From(c.Value())
}
