package bwd

import "github.com/bwdraw/bwd/internal/bufpool"

// Option configures an Image during creation.
// Use functional options to customize Image behavior.
//
// Example:
//
//	// Default: sequential resampling, private scratch pool.
//	img, err := bwd.New(native)
//
//	// Parallel resampling and a scratch pool shared between sibling
//	// images (dependency injection):
//	pool := bwd.NewBufferPool(16)
//	wp := bwd.NewWorkerPool(0)
//	a, err := bwd.New(nativeA, bwd.WithParallelizer(wp), bwd.WithBufferPool(pool))
//	b, err := bwd.New(nativeB, bwd.WithParallelizer(wp), bwd.WithBufferPool(pool))
type Option func(*options)

// options holds optional configuration for Image creation.
type options struct {
	parallelizer Parallelizer
	pool         *BufferPool
	colorTable   []uint32
}

// WithParallelizer sets the executor used for resampling work.
// The default runs everything on the calling goroutine. The output is
// bit-identical either way; only throughput changes.
func WithParallelizer(p Parallelizer) Option {
	return func(o *options) {
		o.parallelizer = p
	}
}

// WithBufferPool sets the scratch buffer pool used for staging copies.
// Sibling images drawing into each other benefit from sharing one pool.
func WithBufferPool(p *BufferPool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithColorTable declares the native image as indexed: every native
// pixel value is an index into table, resolved before format
// conversion. Pixel values past the end of the table are treated as
// direct (non-indexed) pixel values; some indexed-format encoders emit
// such values and failing the whole read serves nobody.
func WithColorTable(table []uint32) Option {
	return func(o *options) {
		o.colorTable = table
	}
}

// BufferPool recycles pixel scratch buffers between operations and
// images. All methods are safe for concurrent use.
type BufferPool = bufpool.Pool

// NewBufferPool creates a pool retaining at most maxPerBucket buffers
// per distinct size.
func NewBufferPool(maxPerBucket int) *BufferPool {
	return bufpool.New(maxPerBucket)
}
