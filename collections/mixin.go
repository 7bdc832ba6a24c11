package collections

import (
	"fmt"
	"sync"
)

// MixinFunc is the function signature for a registered mixin.
//
// The collection is passed as an any (interface{}) so that mixins can be
// registered once and used across any Collection[T] instantiation.
// Type-assert inside the mixin to the concrete *Collection[YourType].
type MixinFunc func(collection any, args ...any) any

// mixinRegistry is the package-level, goroutine-safe mixin store.
var mixinRegistry struct {
	mu     sync.RWMutex
	mixins map[string]MixinFunc
}

func init() {
	mixinRegistry.mixins = make(map[string]MixinFunc)
}

// RegisterMixin adds a named mixin to the global registry.
// If a mixin with that name already exists it is replaced.
// Safe to call from multiple goroutines.
//
// Example – register a mixin that keeps only even integers:
//
//	collections.RegisterMixin("evens", func(col any, _ ...any) any {
//	    c := col.(*collections.Collection[int])
//	    return c.Filter(func(n int) bool { return n%2 == 0 })
//	})
//
//	c      := collections.New(1, 2, 3, 4, 5)
//	res, _ := c.Mixin("evens") // *Collection[int]{2, 4}
func RegisterMixin(name string, fn MixinFunc) {
	mixinRegistry.mu.Lock()
	defer mixinRegistry.mu.Unlock()
	mixinRegistry.mixins[name] = fn
}

// HasMixin reports whether a mixin with the given name is registered.
func HasMixin(name string) bool {
	mixinRegistry.mu.RLock()
	defer mixinRegistry.mu.RUnlock()
	_, ok := mixinRegistry.mixins[name]
	return ok
}

// FlushMixins removes all registered mixins.
// Intended for use in tests.
func FlushMixins() {
	mixinRegistry.mu.Lock()
	defer mixinRegistry.mu.Unlock()
	mixinRegistry.mixins = make(map[string]MixinFunc)
}

// CallMixin calls the named mixin with the supplied collection and args.
// Returns (nil, ErrMixinNotFound) if no mixin is registered under name.
func CallMixin(name string, collection any, args ...any) (any, error) {
	mixinRegistry.mu.RLock()
	fn, ok := mixinRegistry.mixins[name]
	mixinRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMixinNotFound, name)
	}
	return fn(collection, args...), nil
}

// Mixin calls the named registered mixin on c, forwarding args.
// This is a convenience wrapper around the package-level [CallMixin].
func (c *Collection[T]) Mixin(name string, args ...any) (any, error) {
	return CallMixin(name, c, args...)
}
