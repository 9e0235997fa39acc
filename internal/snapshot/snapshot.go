// Package snapshot maintains a premultiplied-ARGB32 mirror of a native
// image with dirty-box driven refresh.
//
// The native image is the source of truth; the snapshot is a pure
// derived cache. Drawing invalidates regions through the dirty tracker,
// and the first read that touches a dirty region pulls native pixels
// back in through the format converter. Writes go the other way: they
// are pushed into the native image and the written region is marked
// dirty, so the next read re-derives it from the source of truth.
//
// A cache belongs to exactly one image and is not internally
// synchronized; per-image access is serialized by the caller, matching
// the usual UI-thread-owns-graphics discipline.
package snapshot

import (
	"github.com/bwdraw/bwd/internal/argb"
	"github.com/bwdraw/bwd/internal/dirty"
	"github.com/bwdraw/bwd/internal/geom"
	"github.com/bwdraw/bwd/internal/logging"
	"github.com/bwdraw/bwd/internal/pixfmt"
)

// Native is the pixel access the cache needs from the backing image.
// All calls are synchronous and non-blocking.
type Native interface {
	// Dimensions returns the fixed width and height of the image.
	Dimensions() (width, height int)

	// ReadPixel returns the native pixel value at (x, y).
	ReadPixel(x, y int) uint32

	// WritePixel stores a native pixel value at (x, y).
	WritePixel(x, y int, pixel uint32)
}

// Cache mirrors a native image as a flat row-major array of
// premultiplied ARGB32 values.
type Cache struct {
	native  Native
	conv    *pixfmt.Converter
	table   *pixfmt.ColorTable // nil unless the image is indexed
	tracker *dirty.Tracker

	width  int
	height int

	// pixels is allocated on the first refresh and never resized;
	// image dimensions are immutable after construction.
	pixels []uint32
}

// New creates a cache over native pixels in the encoding described by
// conv. table is the palette for indexed images, nil otherwise. The
// tracker starts with the whole image dirty, so the first read
// populates the snapshot.
func New(native Native, conv *pixfmt.Converter, table *pixfmt.ColorTable) *Cache {
	width, height := native.Dimensions()
	return &Cache{
		native:  native,
		conv:    conv,
		table:   table,
		tracker: dirty.New(width, height),
		width:   width,
		height:  height,
	}
}

// Width returns the image width in pixels.
func (c *Cache) Width() int { return c.width }

// Height returns the image height in pixels.
func (c *Cache) Height() int { return c.height }

// Bounds returns the whole-image box.
func (c *Cache) Bounds() geom.Box {
	return geom.NewBox(0, 0, c.width, c.height)
}

// Stride returns the snapshot scanline stride in pixels.
func (c *Cache) Stride() int { return c.width }

// MarkDirty records that the native image changed under box, in image
// coordinates. Call it after every draw primitive with the axis-aligned
// bounding box of the primitive's footprint.
func (c *Cache) MarkDirty(box geom.Box) {
	c.tracker.MarkDirty(box)
}

// Tracker exposes the dirty tracker for overlap queries.
func (c *Cache) Tracker() *dirty.Tracker { return c.tracker }

// ReadPremultiplied returns the premultiplied ARGB32 value at (x, y),
// refreshing the snapshot first if the point is inside the dirty box.
// Coordinates outside the image are a caller contract violation and
// panic.
func (c *Cache) ReadPremultiplied(x, y int) uint32 {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		panic("snapshot: pixel read out of bounds")
	}
	c.ensure(geom.NewBox(x, y, 1, 1))
	return c.pixels[y*c.width+x]
}

// Region ensures the snapshot is fresh over box and returns the backing
// array positioned at the box origin, plus the scanline stride.
//
// The view aliases internal storage: the caller must not mutate it, and
// it is stale after the next write or refresh.
func (c *Cache) Region(box geom.Box) ([]uint32, int) {
	box = box.ClampTo(c.width, c.height)
	if box.IsEmpty() {
		return nil, c.width
	}
	c.ensure(box)
	return c.pixels[box.Y*c.width+box.X:], c.width
}

// WriteRegion copies premultiplied pixels from src (with the given
// scanline stride) into the native image over box, converting through
// the format converter, then marks the region dirty. The snapshot is
// never patched in place: the native image is the source of truth and
// the cache re-derives from it on the next read.
//
// src must hold at least (box.Height-1)*srcStride + box.Width pixels.
func (c *Cache) WriteRegion(box geom.Box, src []uint32, srcStride int) {
	box = box.ClampTo(c.width, c.height)
	if box.IsEmpty() {
		return
	}
	if srcStride < box.Width {
		panic("snapshot: source stride smaller than region width")
	}
	if len(src) < (box.Height-1)*srcStride+box.Width {
		panic("snapshot: source buffer smaller than region")
	}

	premulNative := c.conv.Premultiplied()
	for row := 0; row < box.Height; row++ {
		srcRow := src[row*srcStride:]
		y := box.Y + row
		for col := 0; col < box.Width; col++ {
			p := srcRow[col]
			if !premulNative {
				p = argb.Unpremultiply(p)
			}
			c.native.WritePixel(box.X+col, y, c.conv.FromARGB32(p))
		}
	}
	c.tracker.MarkDirty(box)
}

// ensure refreshes the snapshot if box overlaps the dirty region.
//
// The refresh always re-reads the entire current dirty box, not just
// the queried part, then clears the tracker. Refreshing a precise
// sub-region would mean splitting the remaining dirty area into
// several boxes for marginal gain; after the first frame dirty boxes
// rarely span the whole image, so whole-box refresh stays O(dirty
// area) and keeps the bookkeeping trivial.
func (c *Cache) ensure(box geom.Box) {
	if !c.tracker.IsDirtyOver(box) {
		return
	}
	if c.pixels == nil {
		c.pixels = make([]uint32, c.width*c.height)
		logging.Logger().Debug("snapshot allocated",
			"width", c.width, "height", c.height)
	}

	span := c.tracker.Dirty()
	logging.Logger().Debug("snapshot refresh",
		"x", span.X, "y", span.Y, "width", span.Width, "height", span.Height)

	premulNative := c.conv.Premultiplied()
	for y := span.Y; y < span.Y+span.Height; y++ {
		row := c.pixels[y*c.width:]
		for x := span.X; x < span.X+span.Width; x++ {
			p := c.native.ReadPixel(x, y)
			if c.table != nil {
				p = c.table.Resolve(p)
			}
			v := c.conv.ToARGB32(p)
			if !premulNative {
				v = argb.Premultiply(v)
			}
			row[x] = v
		}
	}
	c.tracker.Clear()
}
