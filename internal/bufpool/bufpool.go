// Package bufpool recycles pixel scratch buffers.
//
// Staging copies for region reads, write-backs and resampling are
// acquired from and released back to a Pool instead of being allocated
// per operation, which keeps GC pressure flat when the same image sizes
// recur frame after frame.
package bufpool

import "sync"

// Pool is a size-keyed pool of []uint32 pixel buffers.
//
// Buffers are grouped by exact length, so an acquire for a recurring
// region size is a cheap pop. Released buffers are zeroed before reuse
// so stale pixels never leak between acquisitions.
//
// Thread safety: all methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]uint32

	// maxPerBucket limits retained buffers per size; 0 means unlimited.
	maxPerBucket int
}

// New creates a pool retaining at most maxPerBucket buffers per size.
func New(maxPerBucket int) *Pool {
	return &Pool{
		buckets:      make(map[int][][]uint32),
		maxPerBucket: maxPerBucket,
	}
}

// Acquire returns a zeroed buffer of exactly n pixels.
func (p *Pool) Acquire(n int) []uint32 {
	if n <= 0 {
		return nil
	}

	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]uint32, n)
}

// Release returns a buffer to the pool for reuse. Nil buffers are
// ignored; buffers past the bucket capacity are dropped for the GC.
func (p *Pool) Release(buf []uint32) {
	if buf == nil {
		return
	}
	n := len(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxPerBucket > 0 && len(bucket) >= p.maxPerBucket {
		return
	}
	p.buckets[n] = append(bucket, buf)
}
