// Package parallel provides the executor abstraction used to fan
// pixel work out across goroutines.
//
// The resampler partitions its output into independent row-range tasks
// that share only read-only input and write disjoint rows, so any
// Parallelizer produces bit-identical results; the choice only affects
// throughput.
package parallel

// Parallelizer runs a batch of independent tasks and returns when all
// of them have completed. Implementations may run the tasks on the
// calling goroutine or spread them across workers.
type Parallelizer interface {
	// Execute runs every task and waits for completion.
	Execute(tasks []func())

	// Workers returns the level of parallelism callers should
	// partition work for. Always at least 1.
	Workers() int
}

// Sequential runs every task in order on the calling goroutine.
// It is the zero-dependency default and the reference for determinism
// tests against pooled execution.
type Sequential struct{}

// Execute runs the tasks one after another.
func (Sequential) Execute(tasks []func()) {
	for _, task := range tasks {
		if task != nil {
			task()
		}
	}
}

// Workers returns 1.
func (Sequential) Workers() int { return 1 }
