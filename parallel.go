package bwd

import "github.com/bwdraw/bwd/internal/parallel"

// Parallelizer runs a batch of independent tasks and returns when all
// of them have completed. Resampling work is handed to a Parallelizer
// as row-stripe tasks that share only read-only input and write
// disjoint output rows, so any implementation (sequential or pooled)
// produces bit-identical pixels.
type Parallelizer = parallel.Parallelizer

// Sequential runs every task in order on the calling goroutine.
// It is the default Parallelizer for new images.
type Sequential = parallel.Sequential

// WorkerPool is a work-stealing pool of goroutines implementing
// [Parallelizer]. Close it when done to release the workers.
type WorkerPool = parallel.WorkerPool

// NewWorkerPool creates a pool with the given number of workers; 0
// means GOMAXPROCS.
func NewWorkerPool(workers int) *WorkerPool {
	return parallel.NewWorkerPool(workers)
}
