package chain

import (
	"context"

	"github.com/dvhns/golodash/collections"
)

// AsyncChain is a lazy pipeline whose map and filter steps take a context
// and may fail.
//
// It has the same builder shape as [Chain]; the terminal call is
// [AsyncChain.Await]. Map and filter steps process elements one at a time,
// in slice order, each call completed before the next begins, so the output
// matches the equivalent synchronous pipeline exactly. Take, skip, and
// reverse steps run synchronously.
type AsyncChain[T any] struct {
	items    []T
	ops      []asyncOperation[T]
	consumed bool
}

// NewAsync creates an AsyncChain wrapping a copy of items.
func NewAsync[T any](items []T) *AsyncChain[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &AsyncChain[T]{items: dst}
}

func (c *AsyncChain[T]) mustBuilding() {
	if c.consumed {
		panic("chain: use of consumed chain")
	}
}

// MapAsync appends a transform step applied to every element.
func (c *AsyncChain[T]) MapAsync(iteratee func(context.Context, T) (T, error)) *AsyncChain[T] {
	c.mustBuilding()
	c.ops = append(c.ops, asyncMapOp[T]{iteratee: iteratee})
	return c
}

// FilterAsync appends a step keeping only elements for which predicate
// returns true, preserving relative order.
func (c *AsyncChain[T]) FilterAsync(predicate func(context.Context, T) (bool, error)) *AsyncChain[T] {
	c.mustBuilding()
	c.ops = append(c.ops, asyncFilterOp[T]{predicate: predicate})
	return c
}

// Take appends a step keeping the first min(n, len) elements.
func (c *AsyncChain[T]) Take(n int) *AsyncChain[T] {
	c.mustBuilding()
	c.ops = append(c.ops, syncStep[T]{op: takeOp[T]{n: n}})
	return c
}

// Skip appends a step dropping the first min(n, len) elements.
func (c *AsyncChain[T]) Skip(n int) *AsyncChain[T] {
	c.mustBuilding()
	c.ops = append(c.ops, syncStep[T]{op: skipOp[T]{n: n}})
	return c
}

// Reverse appends a step reversing the remaining element order.
func (c *AsyncChain[T]) Reverse() *AsyncChain[T] {
	c.mustBuilding()
	c.ops = append(c.ops, syncStep[T]{op: reverseOp[T]{}})
	return c
}

// Await consumes the chain: starting from the source slice, it applies every
// recorded operation in append order and returns the final slice.
//
// The first step error aborts evaluation and is returned. Context
// cancellation is observed between element calls.
func (c *AsyncChain[T]) Await(ctx context.Context) ([]T, error) {
	c.mustBuilding()
	c.consumed = true
	result := c.items
	c.items = nil
	ops := c.ops
	c.ops = nil
	for _, op := range ops {
		var err error
		result, err = op.apply(ctx, result)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Collection consumes the chain and wraps the result in a
// collections.Collection.
func (c *AsyncChain[T]) Collection(ctx context.Context) (*collections.Collection[T], error) {
	items, err := c.Await(ctx)
	if err != nil {
		return nil, err
	}
	return collections.From(items), nil
}
