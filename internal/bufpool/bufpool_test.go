package bufpool

import (
	"sync"
	"testing"
)

func TestPool_AcquireSize(t *testing.T) {
	p := New(4)
	buf := p.Acquire(128)
	if len(buf) != 128 {
		t.Fatalf("len = %d, want 128", len(buf))
	}
}

func TestPool_AcquireZeroOrNegative(t *testing.T) {
	p := New(4)
	if p.Acquire(0) != nil {
		t.Error("Acquire(0) should return nil")
	}
	if p.Acquire(-5) != nil {
		t.Error("Acquire(-5) should return nil")
	}
}

func TestPool_ReusedBufferIsZeroed(t *testing.T) {
	p := New(4)
	buf := p.Acquire(16)
	for i := range buf {
		buf[i] = 0xDEADBEEF
	}
	p.Release(buf)

	again := p.Acquire(16)
	for i, v := range again {
		if v != 0 {
			t.Fatalf("reused buffer not zeroed at %d: %#x", i, v)
		}
	}
}

func TestPool_BucketCapacity(t *testing.T) {
	p := New(1)
	a := p.Acquire(8)
	b := p.Acquire(8)
	p.Release(a)
	p.Release(b) // over capacity, dropped

	p.mu.Lock()
	n := len(p.buckets[8])
	p.mu.Unlock()
	if n != 1 {
		t.Errorf("bucket holds %d buffers, want 1", n)
	}
}

func TestPool_ConcurrentUse(t *testing.T) {
	p := New(8)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				buf := p.Acquire(64)
				buf[0] = 1
				p.Release(buf)
			}
		}()
	}
	wg.Wait()
}
