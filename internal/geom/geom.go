// Package geom provides integer axis-aligned boxes for pixel-space
// bookkeeping.
//
// A Box is a rectangle in image coordinates: X/Y is the top-left corner,
// Width/Height the extent. A box with non-positive width or height is
// empty; Empty is the canonical empty value. All operations treat every
// empty box as interchangeable with Empty.
package geom

// Box is a rectangular region in pixel coordinates.
type Box struct {
	X, Y          int
	Width, Height int
}

// Empty is the canonical empty box.
var Empty = Box{}

// NewBox returns a box with the given origin and extent.
func NewBox(x, y, width, height int) Box {
	return Box{X: x, Y: y, Width: width, Height: height}
}

// IsEmpty reports whether the box covers no pixels.
func (b Box) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Area returns the number of pixels covered by the box.
func (b Box) Area() int {
	if b.IsEmpty() {
		return 0
	}
	return b.Width * b.Height
}

// Contains reports whether the pixel (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Overlaps reports whether the two boxes share at least one pixel.
func (b Box) Overlaps(o Box) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.X < o.X+o.Width && o.X < b.X+b.Width &&
		b.Y < o.Y+o.Height && o.Y < b.Y+b.Height
}

// Union returns the smallest box containing both b and o.
// The union of an empty box with anything is that thing.
func (b Box) Union(o Box) Box {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	x1 := minInt(b.X, o.X)
	y1 := minInt(b.Y, o.Y)
	x2 := maxInt(b.X+b.Width, o.X+o.Width)
	y2 := maxInt(b.Y+b.Height, o.Y+o.Height)
	return Box{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersect returns the overlapping region of b and o, or Empty if they
// do not overlap.
func (b Box) Intersect(o Box) Box {
	if !b.Overlaps(o) {
		return Empty
	}
	x1 := maxInt(b.X, o.X)
	y1 := maxInt(b.Y, o.Y)
	x2 := minInt(b.X+b.Width, o.X+o.Width)
	y2 := minInt(b.Y+b.Height, o.Y+o.Height)
	return Box{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// ClampTo clamps the box to the region [0, width) x [0, height).
// Coordinates far outside the region, including negative origins and
// extents that would overflow int when summed naively, are handled by
// doing the edge arithmetic in 64 bits. Returns Empty if nothing of the
// box survives the clamp.
func (b Box) ClampTo(width, height int) Box {
	if b.IsEmpty() || width <= 0 || height <= 0 {
		return Empty
	}
	x1 := int64(b.X)
	y1 := int64(b.Y)
	x2 := x1 + int64(b.Width)
	y2 := y1 + int64(b.Height)
	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	if x2 > int64(width) {
		x2 = int64(width)
	}
	if y2 > int64(height) {
		y2 = int64(height)
	}
	if x2 <= x1 || y2 <= y1 {
		return Empty
	}
	return Box{X: int(x1), Y: int(y1), Width: int(x2 - x1), Height: int(y2 - y1)}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
