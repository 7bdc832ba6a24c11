// Package collections provides a generic Collection type and standalone
// slice functions mirroring the lodash collection API with static typing.
//
// # Overview
//
// Every collection method is available in two forms: a free function
// operating on a plain slice, and a method on [Collection][T] for fluent use:
//
//	evens := collections.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
//
//	result := collections.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    SortByDesc(func(n int) float64 { return float64(n) }).
//	    Take(2)
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. This makes Collection values safe to pass across goroutines
// without locking and avoids accidental aliasing bugs in pipelines.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type or need a comparable key are
// exposed as package-level functions only:
//
//	names := collections.Map(users, func(u User) string { return u.Name })
//	byDept := collections.GroupBy(users, func(u User) string { return u.Department })
//	counts := collections.CountBy(words, func(w string) int { return len(w) })
//
// Package-level functions: [Each], [EachRight], [Map], [Filter], [Reduce],
// [ReduceRight], [Find], [FindLast], [FindIndex], [Includes], [Every],
// [Some], [CountBy], [Partition], [GroupBy], [KeyBy], [Invoke], [SortBy],
// [OrderBy], [Size], [Shuffle], [Sample], [SampleSize], [Zip].
//
// # Iteratee convention
//
// Callbacks receive the element only, matching the single-argument iteratee
// form of the mimicked API. Predicates return bool; iteratees return the
// transformed value. The library never recovers a panic raised by a
// user-supplied callback.
//
// # Mixins (runtime extension)
//
// Register named functions at runtime via [RegisterMixin] and call them
// through [Collection.Mixin]:
//
//	collections.RegisterMixin("evens", func(col any, _ ...any) any {
//	    c := col.(*collections.Collection[int])
//	    return c.Filter(func(n int) bool { return n%2 == 0 })
//	})
//
// For deferred, composed pipelines see the chain package; for parallel and
// context-aware variants see the parallel and async packages.
package collections
