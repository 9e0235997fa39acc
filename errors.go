package bwd

import (
	"errors"

	"github.com/bwdraw/bwd/internal/pixfmt"
)

// Errors reported at construction time or on write validation. Pixel
// read/write hot paths never return errors; out-of-bounds access there
// is a caller contract violation and panics.
var (
	// ErrInvalidDimensions is returned when a native image reports
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("bwd: invalid image dimensions")

	// ErrInvalidStride is returned when a buffer stride is smaller
	// than the region width.
	ErrInvalidStride = errors.New("bwd: stride too small for region width")

	// ErrDataTooSmall is returned when a provided buffer is smaller
	// than the region requires.
	ErrDataTooSmall = errors.New("bwd: pixel buffer too small for region")

	// ErrOutOfBounds is returned when a region lies outside the image.
	ErrOutOfBounds = errors.New("bwd: region out of image bounds")

	// ErrUnsupportedFormat is returned for format names missing from
	// the registry.
	ErrUnsupportedFormat = pixfmt.ErrUnsupportedFormat

	// ErrMaskOverlap is returned when two channel masks of a
	// PixelFormat share bits.
	ErrMaskOverlap = pixfmt.ErrMaskOverlap

	// ErrMaskWidth is returned when a channel mask of a PixelFormat is
	// missing, not contiguous, or wider than 16 bits.
	ErrMaskWidth = pixfmt.ErrMaskWidth
)
