package bwd

// MemoryImage is an in-memory [NativeImage]: a stride-aware array of
// native pixel values, one uint32 word per pixel regardless of the
// format's bit depth. It is the reference adapter for callers without
// a toolkit image, and the test double for the engine itself.
//
// Like any NativeImage it carries no snapshot or dirty state of its
// own; wrap it with [New] to get caching.
type MemoryImage struct {
	format PixelFormat
	width  int
	height int
	stride int // pixels per row
	pix    []uint32
}

// NewMemoryImage allocates a zeroed memory image.
func NewMemoryImage(width, height int, format PixelFormat) (*MemoryImage, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &MemoryImage{
		format: format,
		width:  width,
		height: height,
		stride: width,
		pix:    make([]uint32, width*height),
	}, nil
}

// NewMemoryImageWithPixels wraps existing native pixel data without
// copying. pix must hold at least (height-1)*stride + width values.
func NewMemoryImageWithPixels(pix []uint32, width, height, stride int, format PixelFormat) (*MemoryImage, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width {
		return nil, ErrInvalidStride
	}
	if len(pix) < (height-1)*stride+width {
		return nil, ErrDataTooSmall
	}
	return &MemoryImage{
		format: format,
		width:  width,
		height: height,
		stride: stride,
		pix:    pix,
	}, nil
}

// Dimensions returns the width and height of the image.
func (m *MemoryImage) Dimensions() (int, int) { return m.width, m.height }

// Format describes the native pixel encoding.
func (m *MemoryImage) Format() PixelFormat { return m.format }

// Stride returns the scanline stride in pixels.
func (m *MemoryImage) Stride() int { return m.stride }

// Pix returns the backing native pixel array.
func (m *MemoryImage) Pix() []uint32 { return m.pix }

// ReadPixel returns the native pixel value at (x, y).
func (m *MemoryImage) ReadPixel(x, y int) uint32 {
	return m.pix[y*m.stride+x]
}

// WritePixel stores a native pixel value at (x, y).
func (m *MemoryImage) WritePixel(x, y int, pixel uint32) {
	m.pix[y*m.stride+x] = pixel
}
