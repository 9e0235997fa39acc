package bwd

import "github.com/bwdraw/bwd/internal/geom"

// Rect is a rectangular region in pixel coordinates: X/Y is the
// top-left corner, Width/Height the extent. A Rect with non-positive
// width or height is empty.
type Rect struct {
	X, Y          int
	Width, Height int
}

// IsEmpty reports whether the rect covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rect containing both r and o. The union
// of an empty rect with anything is that thing.
func (r Rect) Union(o Rect) Rect {
	return fromBox(r.box().Union(o.box()))
}

// Intersect returns the overlapping region of r and o, or an empty
// rect if they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	return fromBox(r.box().Intersect(o.box()))
}

// Overlaps reports whether the two rects share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	return r.box().Overlaps(o.box())
}

func (r Rect) box() geom.Box {
	return geom.Box{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func fromBox(b geom.Box) Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}
