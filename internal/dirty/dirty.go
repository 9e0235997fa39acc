// Package dirty tracks the stale region of a cached image snapshot.
//
// The tracker keeps a single axis-aligned bounding box covering
// everything drawn since the snapshot was last refreshed. Marking grows
// the box monotonically by union; a refresh clears it back to empty.
// One tracker is owned by exactly one image and is not internally
// synchronized; per-image access is serialized by the caller.
package dirty

import "github.com/bwdraw/bwd/internal/geom"

// Tracker accumulates the dirty bounding box of an image of fixed
// dimensions.
type Tracker struct {
	width  int
	height int
	box    geom.Box
}

// New returns a tracker for an image of the given dimensions. The
// initial dirty box is the whole image: the snapshot starts
// unpopulated, so everything is stale until the first refresh.
func New(width, height int) *Tracker {
	return &Tracker{
		width:  width,
		height: height,
		box:    geom.NewBox(0, 0, width, height),
	}
}

// MarkDirty unions box into the dirty region. The box is clamped to the
// image bounds first, so callers may pass footprints computed in
// transformed user space without worrying about huge or negative
// coordinates. Boxes entirely outside the image are ignored.
func (t *Tracker) MarkDirty(box geom.Box) {
	clamped := box.ClampTo(t.width, t.height)
	if clamped.IsEmpty() {
		return
	}
	t.box = t.box.Union(clamped)
}

// MarkAllDirty marks the whole image dirty.
func (t *Tracker) MarkAllDirty() {
	t.box = geom.NewBox(0, 0, t.width, t.height)
}

// IsDirtyOver reports whether the dirty box overlaps the given box.
// A single pixel is queried as a 1x1 box.
func (t *Tracker) IsDirtyOver(box geom.Box) bool {
	return t.box.Overlaps(box)
}

// Dirty returns the current dirty box, geom.Empty if clean.
func (t *Tracker) Dirty() geom.Box { return t.box }

// Clear resets the tracker to clean. Until the next MarkDirty, every
// IsDirtyOver query reports false.
func (t *Tracker) Clear() { t.box = geom.Empty }
