package bwd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImage(t *testing.T, w, h int, format string, opts ...Option) *Image {
	t.Helper()
	native, err := NewMemoryImage(w, h, MustFormat(format))
	require.NoError(t, err)
	img, err := New(native, opts...)
	require.NoError(t, err)
	return img
}

func TestNew_Validation(t *testing.T) {
	t.Run("overlapping masks", func(t *testing.T) {
		native, err := NewMemoryImage(4, 4, PixelFormat{
			RedMask: 0xFF00, GreenMask: 0x0FF0, BlueMask: 0x000F,
		})
		require.NoError(t, err)
		_, err = New(native)
		assert.ErrorIs(t, err, ErrMaskOverlap)
	})

	t.Run("missing mask", func(t *testing.T) {
		native, err := NewMemoryImage(4, 4, PixelFormat{RedMask: 0xFF})
		require.NoError(t, err)
		_, err = New(native)
		assert.ErrorIs(t, err, ErrMaskWidth)
	})

	t.Run("bad dimensions", func(t *testing.T) {
		_, err := NewMemoryImage(0, 4, MustFormat("ARGB8888"))
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}

func TestFormat_Registry(t *testing.T) {
	f, err := Format("RGB565")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x001F), f.BlueMask)
	assert.Zero(t, f.AlphaMask)

	_, err = Format("YUV420")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	assert.Panics(t, func() { MustFormat("YUV420") })
	assert.Contains(t, FormatNames(), "ARGB8888")
}

func TestImage_WriteThenReadRegion(t *testing.T) {
	img := newTestImage(t, 8, 8, "ARGB8888")

	r := Rect{X: 2, Y: 3, Width: 3, Height: 2}
	src := []uint32{
		0xFF102030, 0xFF405060, 0xFF708090,
		0xFFA0B0C0, 0xFFD0E0F0, 0xFF112233,
	}
	require.NoError(t, img.WriteRegion(r, src, 3))

	pix, stride := img.Pixels(r)
	for row := 0; row < r.Height; row++ {
		for col := 0; col < r.Width; col++ {
			assert.Equal(t, src[row*3+col], pix[row*stride+col],
				"pixel (%d,%d)", col, row)
		}
	}
}

func TestImage_WriteRegionValidation(t *testing.T) {
	img := newTestImage(t, 8, 8, "ARGB8888")
	buf := make([]uint32, 4)

	assert.ErrorIs(t, img.WriteRegion(Rect{X: 7, Y: 0, Width: 2, Height: 2}, buf, 2), ErrOutOfBounds)
	assert.ErrorIs(t, img.WriteRegion(Rect{X: 0, Y: 0, Width: 2, Height: 2}, buf, 1), ErrInvalidStride)
	assert.ErrorIs(t, img.WriteRegion(Rect{X: 0, Y: 0, Width: 2, Height: 3}, buf, 2), ErrDataTooSmall)
	assert.NoError(t, img.WriteRegion(Rect{Width: 0, Height: 2}, nil, 0), "empty region is a no-op")
}

func TestImage_NativeIsSourceOfTruth(t *testing.T) {
	native, err := NewMemoryImage(4, 4, MustFormat("ARGB8888"))
	require.NoError(t, err)
	img, err := New(native)
	require.NoError(t, err)

	// Settle the initial refresh, then draw natively and mark.
	img.ReadPremultiplied(0, 0)
	native.WritePixel(2, 2, 0xFF123456)
	assert.NotEqual(t, uint32(0xFF123456), img.ReadPremultiplied(2, 2),
		"unmarked native write must not be visible yet")

	img.MarkDirty(Rect{X: 2, Y: 2, Width: 1, Height: 1})
	assert.True(t, img.IsDirtyOver(Rect{X: 2, Y: 2, Width: 1, Height: 1}))
	assert.Equal(t, uint32(0xFF123456), img.ReadPremultiplied(2, 2))
	assert.False(t, img.IsDirtyOver(img.Bounds()), "refresh must clear dirty state")
}

func TestImage_FormatRoundTripThroughRGB565(t *testing.T) {
	img := newTestImage(t, 2, 1, "RGB565")

	// 0xFF0000F8 survives the 5-bit blue channel exactly; arbitrary
	// colors are quantized to the channel widths.
	require.NoError(t, img.WriteRegion(Rect{Width: 1, Height: 1}, []uint32{0xFF0000F8}, 1))
	assert.Equal(t, uint32(0xFF0000F8), img.ReadPremultiplied(0, 0))
	assert.Equal(t, uint32(0x001F), img.Native().(*MemoryImage).Pix()[0])
}

func TestImage_ARGB1555OpaqueStaysOpaque(t *testing.T) {
	native, err := NewMemoryImage(1, 1, MustFormat("ARGB1555"))
	require.NoError(t, err)
	native.WritePixel(0, 0, 0xFFFF) // opaque white

	img, err := New(native)
	require.NoError(t, err)

	// The 1-bit alpha must widen to 0xFF, so premultiplication on
	// refresh leaves the color channels untouched.
	assert.Equal(t, uint32(0xFFF8F8F8), img.ReadPremultiplied(0, 0))
}

func TestImage_ReadARGB32(t *testing.T) {
	img := newTestImage(t, 2, 1, "ARGB8888")
	require.NoError(t, img.WriteRegion(Rect{Width: 1, Height: 1}, []uint32{0x80204060}, 1))
	got := img.ReadARGB32(0, 0)
	assert.Equal(t, uint32(0x80), got>>24)
	// Straight-alpha channels recover within rounding of 0x40, 0x80, 0xC0.
	assert.InDelta(t, 0x40, int(got>>16&0xFF), 1)
	assert.InDelta(t, 0x80, int(got>>8&0xFF), 1)
	assert.InDelta(t, 0xC0, int(got&0xFF), 1)
}

func TestImage_InvertRect(t *testing.T) {
	img := newTestImage(t, 4, 4, "ARGB8888")
	require.NoError(t, img.WriteRegion(Rect{Width: 4, Height: 4},
		solidPixels(16, 0xFF102030), 4))

	img.InvertRect(Rect{X: 1, Y: 1, Width: 2, Height: 2})

	assert.Equal(t, uint32(0xFFEFDFCF), img.ReadPremultiplied(1, 1))
	assert.Equal(t, uint32(0xFF102030), img.ReadPremultiplied(0, 0), "outside rect untouched")

	// Inverting twice restores the original.
	img.InvertRect(Rect{X: 1, Y: 1, Width: 2, Height: 2})
	assert.Equal(t, uint32(0xFF102030), img.ReadPremultiplied(1, 1))
}

func TestImage_CopyRegionIsCallerOwned(t *testing.T) {
	img := newTestImage(t, 4, 4, "ARGB8888")
	require.NoError(t, img.WriteRegion(Rect{Width: 4, Height: 4},
		solidPixels(16, 0xFF0000FF), 4))

	buf := img.CopyRegion(Rect{X: 1, Y: 1, Width: 2, Height: 2})
	require.Len(t, buf, 4)
	assert.Equal(t, uint32(0xFF0000FF), buf[0])

	// Mutating the copy must not affect the image.
	buf[0] = 0
	assert.Equal(t, uint32(0xFF0000FF), img.ReadPremultiplied(1, 1))
	img.ReleaseBuffer(buf)
}

func TestImage_DrawScaledBetweenFormats(t *testing.T) {
	src := newTestImage(t, 2, 2, "ARGB8888")
	require.NoError(t, src.WriteRegion(Rect{Width: 2, Height: 2}, []uint32{
		0xFFFF0000, 0xFF00FF00,
		0xFF0000FF, 0xFFFFFFFF,
	}, 2))

	dst := newTestImage(t, 4, 4, "XRGB8888")
	dst.DrawScaled(src, src.Bounds(), dst.Bounds(), dst.Bounds(), Nearest, Src)

	// Nearest 2x upscale: 2x2 blocks, pushed through the alpha-less
	// destination format and back.
	assert.Equal(t, uint32(0xFFFF0000), dst.ReadPremultiplied(0, 0))
	assert.Equal(t, uint32(0xFF00FF00), dst.ReadPremultiplied(3, 0))
	assert.Equal(t, uint32(0xFF0000FF), dst.ReadPremultiplied(0, 3))
	assert.Equal(t, uint32(0xFFFFFFFF), dst.ReadPremultiplied(3, 3))
}

func TestImage_DrawScaledClipsToImage(t *testing.T) {
	src := newTestImage(t, 2, 2, "ARGB8888")
	require.NoError(t, src.WriteRegion(Rect{Width: 2, Height: 2},
		solidPixels(4, 0xFF00FF00), 2))

	dst := newTestImage(t, 4, 4, "ARGB8888")
	// Destination rect hangs off the image; only the on-image part is
	// written, the rest is clipped, not an error.
	dst.DrawScaled(src, src.Bounds(), Rect{X: 2, Y: 2, Width: 4, Height: 4},
		dst.Bounds(), Nearest, Src)

	assert.Equal(t, uint32(0xFF00FF00), dst.ReadPremultiplied(3, 3))
	assert.Equal(t, uint32(0x00000000), dst.ReadPremultiplied(1, 1))
}

func TestImage_DrawScaledOver(t *testing.T) {
	src := newTestImage(t, 2, 2, "ARGB8888")
	require.NoError(t, src.WriteRegion(Rect{Width: 2, Height: 2},
		solidPixels(4, 0x80400000), 2)) // half-transparent premul red

	dst := newTestImage(t, 2, 2, "ARGB8888")
	require.NoError(t, dst.WriteRegion(Rect{Width: 2, Height: 2},
		solidPixels(4, 0xFF0000FF), 2))

	dst.DrawScaled(src, src.Bounds(), dst.Bounds(), dst.Bounds(), Nearest, Over)

	// out = src + dst*(1 - 0x80/255): alpha stays 0xFF, blue halves.
	got := dst.ReadPremultiplied(0, 0)
	assert.Equal(t, uint32(0xFF), got>>24)
	assert.Equal(t, uint32(0x40), got>>16&0xFF)
	assert.InDelta(t, 0x7F, int(got&0xFF), 1)
}

func TestImage_DrawScaledWithWorkerPoolMatchesSequential(t *testing.T) {
	srcNative, err := NewMemoryImage(33, 21, MustFormat("ARGB8888"))
	require.NoError(t, err)
	for i := range srcNative.Pix() {
		srcNative.Pix()[i] = uint32(i*2654435761 + 255<<24)
	}
	src, err := New(srcNative)
	require.NoError(t, err)

	run := func(opts ...Option) []uint32 {
		dst := newTestImage(t, 97, 55, "ARGB8888", opts...)
		dst.DrawScaled(src, src.Bounds(), dst.Bounds(), dst.Bounds(), Bilinear, Src)
		pix, stride := dst.Pixels(dst.Bounds())
		out := make([]uint32, 0, 97*55)
		for y := 0; y < 55; y++ {
			out = append(out, pix[y*stride:y*stride+97]...)
		}
		return out
	}

	sequential := run()
	pool := NewWorkerPool(4)
	defer pool.Close()
	parallel := run(WithParallelizer(pool))

	assert.Equal(t, sequential, parallel, "resampling must be bit-identical for any worker count")
}

func TestImage_IndexedColorTable(t *testing.T) {
	native, err := NewMemoryImage(3, 1, MustFormat("ARGB8888"))
	require.NoError(t, err)
	native.WritePixel(0, 0, 0)
	native.WritePixel(1, 0, 1)
	native.WritePixel(2, 0, 0xFFAABBCC) // out of range: raw pixel value

	img, err := New(native, WithColorTable([]uint32{0xFFFF0000, 0xFF00FF00}))
	require.NoError(t, err)

	assert.Equal(t, uint32(0xFFFF0000), img.ReadPremultiplied(0, 0))
	assert.Equal(t, uint32(0xFF00FF00), img.ReadPremultiplied(1, 0))
	assert.Equal(t, uint32(0xFFAABBCC), img.ReadPremultiplied(2, 0))
}

func TestImage_ToRGBA(t *testing.T) {
	img := newTestImage(t, 2, 1, "ARGB8888")
	require.NoError(t, img.WriteRegion(Rect{Width: 2, Height: 1},
		[]uint32{0xFF112233, 0xFFABCDEF}, 2))

	out := img.ToRGBA(img.Bounds())
	require.Equal(t, 2, out.Bounds().Dx())
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0xFF}, []byte(out.Pix[0:4]))
	assert.Equal(t, []byte{0xAB, 0xCD, 0xEF, 0xFF}, []byte(out.Pix[4:8]))
}

func TestImage_OutOfBoundsReadPanics(t *testing.T) {
	img := newTestImage(t, 4, 4, "ARGB8888")
	assert.Panics(t, func() { img.ReadPremultiplied(-1, 0) })
	assert.Panics(t, func() { img.ReadPremultiplied(0, 4) })
}

func solidPixels(n int, p uint32) []uint32 {
	pix := make([]uint32, n)
	for i := range pix {
		pix[i] = p
	}
	return pix
}
