package bwd

import (
	"image"

	"github.com/bwdraw/bwd/internal/argb"
	"github.com/bwdraw/bwd/internal/geom"
	"github.com/bwdraw/bwd/internal/parallel"
	"github.com/bwdraw/bwd/internal/pixfmt"
	"github.com/bwdraw/bwd/internal/scale"
	"github.com/bwdraw/bwd/internal/snapshot"
)

// Policy selects the resampling algorithm for [Image.DrawScaled].
type Policy = scale.Policy

// Resampling policies.
const (
	// Nearest selects the closest source pixel. Fastest, and a pure
	// copy when source and destination spans are equal.
	Nearest = scale.Nearest

	// Bilinear interpolates between the 4 neighboring source pixels.
	Bilinear = scale.Bilinear

	// BoxAverage averages all covered source pixels weighted by
	// coverage. Best quality for downscaling.
	BoxAverage = scale.BoxAverage
)

// Op selects how resampled pixels land in the destination.
type Op = scale.Op

// Draw operators.
const (
	// Src overwrites destination pixels.
	Src = scale.Src

	// Over composites onto the destination with Porter-Duff
	// source-over in premultiplied space.
	Over = scale.Over
)

// Image couples a [NativeImage] with a premultiplied-ARGB32 snapshot
// cache and a dirty-box tracker. The native image remains the single
// source of truth; the snapshot is a derived cache refreshed on demand
// over the current dirty box.
//
// An Image is not internally synchronized. Reads and writes on one
// Image must be serialized by the caller; independent Images share no
// state.
type Image struct {
	native NativeImage
	cache  *snapshot.Cache
	par    Parallelizer
	pool   *BufferPool

	width  int
	height int
}

// New wraps a native image. The format descriptor is validated and the
// converter resolved here, once; unsupported mask layouts fail with
// [ErrMaskOverlap] or [ErrMaskWidth] and are never retried per pixel.
func New(native NativeImage, opts ...Option) (*Image, error) {
	width, height := native.Dimensions()
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	conv, err := pixfmt.NewConverter(native.Format().spec())
	if err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.parallelizer == nil {
		o.parallelizer = parallel.Sequential{}
	}
	if o.pool == nil {
		o.pool = NewBufferPool(8)
	}

	var table *pixfmt.ColorTable
	if o.colorTable != nil {
		table = pixfmt.NewColorTable(o.colorTable)
	}

	return &Image{
		native: native,
		cache:  snapshot.New(native, conv, table),
		par:    o.parallelizer,
		pool:   o.pool,
		width:  width,
		height: height,
	}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// Bounds returns the whole-image rect.
func (img *Image) Bounds() Rect {
	return Rect{Width: img.width, Height: img.height}
}

// Native returns the wrapped native image.
func (img *Image) Native() NativeImage { return img.native }

// MarkDirty records that the native image changed under r. Toolkit
// adapters call this after every draw primitive with the axis-aligned
// bounding box of the primitive's footprint in image coordinates;
// for transformed drawing, the bounding box after the transform.
// Coordinates are clamped to the image; marking is cumulative until
// the next snapshot refresh.
func (img *Image) MarkDirty(r Rect) {
	img.cache.MarkDirty(r.box())
}

// IsDirtyOver reports whether the snapshot is stale anywhere under r.
func (img *Image) IsDirtyOver(r Rect) bool {
	return img.cache.Tracker().IsDirtyOver(r.box())
}

// ReadPremultiplied returns the premultiplied ARGB32 value at (x, y),
// refreshing the snapshot first if needed. Out-of-bounds coordinates
// are a caller contract violation and panic.
func (img *Image) ReadPremultiplied(x, y int) uint32 {
	return img.cache.ReadPremultiplied(x, y)
}

// ReadARGB32 returns the straight-alpha ARGB32 value at (x, y).
func (img *Image) ReadARGB32(x, y int) uint32 {
	return argb.Unpremultiply(img.cache.ReadPremultiplied(x, y))
}

// Pixels ensures the snapshot is fresh over r and returns the backing
// array positioned at the top-left of r (clamped to the image), plus
// the scanline stride in pixels. This is the zero-copy path for
// display flush and bulk readback.
//
// The view aliases internal storage: do not mutate it, and treat it as
// stale after the next write, draw, or refresh.
func (img *Image) Pixels(r Rect) ([]uint32, int) {
	return img.cache.Region(r.box())
}

// CopyRegion returns a caller-owned packed copy of the premultiplied
// pixels under r (clamped to the image), with stride r.Width. The
// buffer comes from the image's scratch pool; hand it back with
// [Image.ReleaseBuffer] when done.
func (img *Image) CopyRegion(r Rect) []uint32 {
	box := r.box().ClampTo(img.width, img.height)
	if box.IsEmpty() {
		return nil
	}
	view, stride := img.cache.Region(box)
	buf := img.pool.Acquire(box.Width * box.Height)
	for row := 0; row < box.Height; row++ {
		copy(buf[row*box.Width:(row+1)*box.Width], view[row*stride:row*stride+box.Width])
	}
	return buf
}

// ReleaseBuffer returns a buffer from [Image.CopyRegion] to the
// scratch pool.
func (img *Image) ReleaseBuffer(buf []uint32) {
	img.pool.Release(buf)
}

// WriteRegion copies premultiplied pixels from src (with the given
// scanline stride) into the native image over r, converting through
// the format converter, and invalidates the written region. The
// snapshot is never patched directly: the next read re-derives it from
// the native image.
func (img *Image) WriteRegion(r Rect, src []uint32, srcStride int) error {
	box := r.box()
	if box.IsEmpty() {
		return nil
	}
	if box.ClampTo(img.width, img.height) != box {
		return ErrOutOfBounds
	}
	if srcStride < box.Width {
		return ErrInvalidStride
	}
	if len(src) < (box.Height-1)*srcStride+box.Width {
		return ErrDataTooSmall
	}
	img.cache.WriteRegion(box, src, srcStride)
	return nil
}

// InvertRect complements the R, G and B channels under r, preserving
// alpha. This is the portable "flip colors" effect for backends
// without raster XOR composition. The inversion happens in straight
// alpha so partially transparent pixels invert their actual color, not
// the premultiplied encoding.
func (img *Image) InvertRect(r Rect) {
	box := r.box().ClampTo(img.width, img.height)
	if box.IsEmpty() {
		return
	}
	buf := img.CopyRegion(fromBox(box))
	for i, p := range buf {
		buf[i] = argb.Premultiply(argb.Invert(argb.Unpremultiply(p)))
	}
	img.cache.WriteRegion(box, buf, box.Width)
	img.pool.Release(buf)
}

// DrawScaled resamples srcRect of src into dstRect of img under the
// given policy, writing only inside clip (pass img.Bounds() for no
// extra clipping). The source rect is clamped to the source image;
// writes are clamped to this image. Zero-area source or destination
// rects are a no-op.
//
// With [Over], resampled pixels are composited onto the current
// destination content; with [Src] they replace it. Resampling runs on
// the image's parallelizer and is bit-identical for any worker count.
func (img *Image) DrawScaled(src *Image, srcRect, dstRect, clip Rect, policy Policy, op Op) {
	sb := srcRect.box().ClampTo(src.width, src.height)
	db := dstRect.box()
	eff := db.Intersect(clip.box()).ClampTo(img.width, img.height)
	if sb.IsEmpty() || db.IsEmpty() || eff.IsEmpty() {
		return
	}

	srcPix, srcStride := src.cache.Region(sb)

	staging := img.pool.Acquire(eff.Width * eff.Height)
	if op == Over {
		// Seed the staging buffer with current destination pixels so
		// source-over composites against real content.
		dstPix, dstStride := img.cache.Region(eff)
		for row := 0; row < eff.Height; row++ {
			copy(staging[row*eff.Width:(row+1)*eff.Width],
				dstPix[row*dstStride:row*dstStride+eff.Width])
		}
	}

	// Staging covers eff only; shift the draw geometry into its frame.
	scale.Draw(
		scale.Buffer{Pix: staging, Stride: eff.Width},
		geom.NewBox(db.X-eff.X, db.Y-eff.Y, db.Width, db.Height),
		geom.NewBox(0, 0, eff.Width, eff.Height),
		scale.Buffer{Pix: srcPix, Stride: srcStride},
		geom.NewBox(0, 0, sb.Width, sb.Height),
		policy, op, img.par)

	img.cache.WriteRegion(eff, staging, eff.Width)
	img.pool.Release(staging)
}

// ToRGBA copies the premultiplied pixels under r (clamped to the
// image) into a new [image.RGBA], whose color model is likewise
// alpha-premultiplied. Handy for feeding toolkit blits or the x/image
// draw machinery.
func (img *Image) ToRGBA(r Rect) *image.RGBA {
	box := r.box().ClampTo(img.width, img.height)
	if box.IsEmpty() {
		return image.NewRGBA(image.Rectangle{})
	}
	view, stride := img.cache.Region(box)
	out := image.NewRGBA(image.Rect(0, 0, box.Width, box.Height))
	for row := 0; row < box.Height; row++ {
		src := view[row*stride : row*stride+box.Width]
		dst := out.Pix[row*out.Stride:]
		for col, p := range src {
			dst[col*4+0] = byte(p >> 16)
			dst[col*4+1] = byte(p >> 8)
			dst[col*4+2] = byte(p)
			dst[col*4+3] = byte(p >> 24)
		}
	}
	return out
}
