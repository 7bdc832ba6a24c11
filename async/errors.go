package async

import "errors"

// ErrInvalidConcurrency is returned by [ExecuteConcurrent] when the
// concurrency limit is below one.
var ErrInvalidConcurrency = errors.New("async: concurrency limit must be greater than 0")
