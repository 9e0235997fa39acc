package pixfmt

// ColorTable is the palette of an indexed-color image: an ordered list
// of native pixel values. A pixel read from such an image is an index
// into the table rather than a direct color. Read-only after
// construction.
type ColorTable struct {
	entries []uint32
}

// NewColorTable copies entries into a new table.
func NewColorTable(entries []uint32) *ColorTable {
	t := &ColorTable{entries: make([]uint32, len(entries))}
	copy(t.entries, entries)
	return t
}

// Len returns the number of palette entries.
func (t *ColorTable) Len() int { return len(t.entries) }

// Resolve maps an indexed pixel to its native pixel value.
//
// Some encoders emit pixel values past the end of the palette; those
// are passed through unchanged and treated as direct pixel values
// instead of failing the whole read.
func (t *ColorTable) Resolve(pixel uint32) uint32 {
	if int64(pixel) < int64(len(t.entries)) {
		return t.entries[pixel]
	}
	return pixel
}
