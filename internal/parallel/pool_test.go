package parallel

import (
	"sync/atomic"
	"testing"
)

func TestSequential_RunsAllInOrder(t *testing.T) {
	var order []int
	tasks := make([]func(), 5)
	for i := range tasks {
		i := i
		tasks[i] = func() { order = append(order, i) }
	}
	Sequential{}.Execute(tasks)

	if len(order) != 5 {
		t.Fatalf("ran %d tasks, want 5", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Errorf("task %d ran at position %d", v, i)
		}
	}
}

func TestSequential_Workers(t *testing.T) {
	if got := (Sequential{}).Workers(); got != 1 {
		t.Errorf("Workers() = %d, want 1", got)
	}
}

func TestWorkerPool_ExecutesAllTasks(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var count atomic.Int64
	tasks := make([]func(), 100)
	for i := range tasks {
		tasks[i] = func() { count.Add(1) }
	}
	pool.Execute(tasks)

	if got := count.Load(); got != 100 {
		t.Errorf("executed %d tasks, want 100", got)
	}
}

func TestWorkerPool_ExecuteWaitsForCompletion(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	results := make([]int, 64)
	tasks := make([]func(), len(results))
	for i := range tasks {
		i := i
		tasks[i] = func() { results[i] = i + 1 }
	}
	pool.Execute(tasks)

	// Execute returned, so every slot must be written.
	for i, v := range results {
		if v != i+1 {
			t.Fatalf("slot %d = %d, not written before Execute returned", i, v)
		}
	}
}

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()
	if pool.Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", pool.Workers())
	}
}

func TestWorkerPool_CloseIsIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool still running after Close")
	}

	// Executing on a closed pool is a no-op, not a hang.
	ran := false
	pool.Execute([]func(){func() { ran = true }})
	if ran {
		t.Error("closed pool executed work")
	}
}

func TestWorkerPool_EmptyBatch(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()
	pool.Execute(nil)
}
