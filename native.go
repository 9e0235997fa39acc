package bwd

// NativeImage is the backing image a toolkit adapter supplies: raw
// pixel access plus a descriptor of the native encoding. All calls are
// synchronous and non-blocking; the engine never retains goroutines
// that touch a NativeImage.
//
// Dimensions are fixed for the lifetime of the image. Pixel
// coordinates passed by the engine are always within bounds.
type NativeImage interface {
	// Dimensions returns the width and height of the image.
	Dimensions() (width, height int)

	// ReadPixel returns the native pixel value at (x, y). For indexed
	// images this is the palette index.
	ReadPixel(x, y int) uint32

	// WritePixel stores a native pixel value at (x, y).
	WritePixel(x, y int, pixel uint32)

	// Format describes the native pixel encoding.
	Format() PixelFormat
}
