// Package async provides context-aware, error-returning variants of the
// collection operations, plus batched execution helpers with an explicit
// concurrency limit.
//
// Iteratees take a context and may fail: Go's rendering of an operation
// returning a deferred value. Element work for Map, Filter, ForEach, Every,
// and Some fans out concurrently with order-preserving reassembly; Reduce
// folds sequentially and Find returns the first match in slice order,
// short-circuiting.
//
//	urls := []string{"https://a", "https://b"}
//	bodies, err := async.Map(ctx, urls, fetch)
//
// The first iteratee error cancels outstanding work and is returned. There
// is no retry or recovery logic: operations run to completion or propagate
// the failure immediately. Iteratee panics are never recovered.
//
// [ExecuteConcurrent] bounds in-flight calls with a weighted semaphore and
// returns [ErrInvalidConcurrency] for a limit below one.
package async
