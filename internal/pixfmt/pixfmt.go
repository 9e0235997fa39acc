// Package pixfmt converts between native pixel encodings and canonical
// ARGB32.
//
// A native encoding is described by a Spec: one bit mask per channel
// inside a 32-bit pixel word. A Converter compiled from a Spec extracts
// each channel, widens or narrows it to 8 bits, and assembles a packed
// ARGB32 value (and the reverse for writing back). Converters are
// immutable and safe to share across images and goroutines.
//
// Spec validation happens once, when the converter is built. The
// per-pixel conversion paths never fail.
package pixfmt

import (
	"errors"
	"fmt"
	"math/bits"
)

// Errors reported at converter construction time.
var (
	// ErrUnsupportedFormat is returned by Lookup for a format name that
	// is not in the registry.
	ErrUnsupportedFormat = errors.New("pixfmt: unsupported pixel format")

	// ErrMaskOverlap is returned when two channel masks share bits.
	ErrMaskOverlap = errors.New("pixfmt: channel masks overlap")

	// ErrMaskWidth is returned when a channel mask is missing, not
	// contiguous, or wider than 16 bits.
	ErrMaskWidth = errors.New("pixfmt: invalid channel mask width")
)

// Spec describes a native pixel encoding by its channel bit masks.
//
// An AlphaMask of zero means the format has no alpha channel; pixels
// read through such a spec get a synthesized alpha of 0xFF.
// Premultiplied marks formats whose stored RGB channels are already
// scaled by alpha.
type Spec struct {
	AlphaMask uint32
	RedMask   uint32
	GreenMask uint32
	BlueMask  uint32

	Premultiplied bool
}

// channel is a compiled mask: the shift to its low bit and its width.
type channel struct {
	shift uint32
	width uint32
}

func compileChannel(mask uint32) (channel, error) {
	if mask == 0 {
		return channel{}, ErrMaskWidth
	}
	shift := uint32(bits.TrailingZeros32(mask))
	width := uint32(bits.Len32(mask >> shift))
	if mask>>shift != 1<<width-1 {
		return channel{}, ErrMaskWidth
	}
	if width > 16 {
		return channel{}, ErrMaskWidth
	}
	return channel{shift: shift, width: width}, nil
}

// extract8 pulls the channel out of a native pixel as an 8-bit value.
// Channels narrower than 8 bits are widened by shifting the source bits
// into the top of the byte, so any nonzero source intensity stays
// nonzero; wider channels keep their top 8 bits.
func (ch channel) extract8(pixel uint32) uint32 {
	v := pixel >> ch.shift & (1<<ch.width - 1)
	if ch.width < 8 {
		return v << (8 - ch.width)
	}
	return v >> (ch.width - 8)
}

// extract8Alpha widens by scaling over the full channel range, so the
// channel extremes map exactly: a 1-bit alpha of 1 becomes 0xFF, not
// 0x80. Opaque native pixels must stay opaque, or premultiplication
// darkens them on every snapshot refresh. Color channels keep the
// cheaper shift widening; for them only monotonicity matters.
func (ch channel) extract8Alpha(pixel uint32) uint32 {
	v := pixel >> ch.shift & (1<<ch.width - 1)
	if ch.width < 8 {
		return v * 255 / (1<<ch.width - 1)
	}
	return v >> (ch.width - 8)
}

// insert8 is the inverse of extract8: the top bits of an 8-bit channel
// value become the native channel bits. It also inverts extract8Alpha:
// floor(v*255/(2^w-1)) keeps the original v in its top w bits.
func (ch channel) insert8(v uint32) uint32 {
	if ch.width < 8 {
		v >>= 8 - ch.width
	} else {
		v <<= ch.width - 8
	}
	return v << ch.shift
}

// Converter translates pixels between one native encoding and ARGB32.
type Converter struct {
	spec     Spec
	a        channel
	r        channel
	g        channel
	b        channel
	hasAlpha bool
}

// NewConverter validates spec and compiles a converter for it.
// The red, green and blue masks must be present, contiguous, at most 16
// bits wide, and pairwise disjoint with each other and the alpha mask.
func NewConverter(spec Spec) (*Converter, error) {
	c := &Converter{spec: spec, hasAlpha: spec.AlphaMask != 0}

	var err error
	if c.r, err = compileChannel(spec.RedMask); err != nil {
		return nil, fmt.Errorf("red mask %#08x: %w", spec.RedMask, err)
	}
	if c.g, err = compileChannel(spec.GreenMask); err != nil {
		return nil, fmt.Errorf("green mask %#08x: %w", spec.GreenMask, err)
	}
	if c.b, err = compileChannel(spec.BlueMask); err != nil {
		return nil, fmt.Errorf("blue mask %#08x: %w", spec.BlueMask, err)
	}
	if c.hasAlpha {
		if c.a, err = compileChannel(spec.AlphaMask); err != nil {
			return nil, fmt.Errorf("alpha mask %#08x: %w", spec.AlphaMask, err)
		}
	}

	masks := []uint32{spec.AlphaMask, spec.RedMask, spec.GreenMask, spec.BlueMask}
	for i := range masks {
		for j := i + 1; j < len(masks); j++ {
			if masks[i]&masks[j] != 0 {
				return nil, fmt.Errorf("masks %#08x and %#08x: %w",
					masks[i], masks[j], ErrMaskOverlap)
			}
		}
	}
	return c, nil
}

// Spec returns the spec the converter was compiled from.
func (c *Converter) Spec() Spec { return c.spec }

// HasAlpha reports whether the native encoding stores alpha.
func (c *Converter) HasAlpha() bool { return c.hasAlpha }

// Premultiplied reports whether the native encoding stores
// premultiplied RGB.
func (c *Converter) Premultiplied() bool { return c.spec.Premultiplied }

// ToARGB32 converts one native pixel to packed ARGB32. Alpha-less
// formats produce an opaque result.
func (c *Converter) ToARGB32(pixel uint32) uint32 {
	a := uint32(0xFF)
	if c.hasAlpha {
		a = c.a.extract8Alpha(pixel)
	}
	return a<<24 | c.r.extract8(pixel)<<16 | c.g.extract8(pixel)<<8 | c.b.extract8(pixel)
}

// FromARGB32 converts a packed ARGB32 value to one native pixel. The
// alpha channel is dropped for alpha-less formats.
func (c *Converter) FromARGB32(argb uint32) uint32 {
	pixel := c.r.insert8(argb>>16&0xFF) | c.g.insert8(argb>>8&0xFF) | c.b.insert8(argb&0xFF)
	if c.hasAlpha {
		pixel |= c.a.insert8(argb >> 24)
	}
	return pixel
}
