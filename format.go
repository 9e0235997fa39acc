package bwd

import (
	"fmt"

	"github.com/bwdraw/bwd/internal/pixfmt"
)

// PixelFormat describes a native pixel encoding by its channel bit
// masks inside a 32-bit pixel word.
//
// An AlphaMask of zero means the format stores no alpha; pixels read
// through it get a synthesized alpha of 0xFF. Premultiplied marks
// formats whose stored RGB channels are already scaled by alpha.
// Masks must not overlap and each must be a contiguous run of at most
// 16 bits; [New] validates this once, at image construction.
type PixelFormat struct {
	AlphaMask uint32
	RedMask   uint32
	GreenMask uint32
	BlueMask  uint32

	Premultiplied bool
}

// Format returns the registered pixel format with the given name
// (e.g. "ARGB8888", "RGB565"). Unknown names fail with
// [ErrUnsupportedFormat].
func Format(name string) (PixelFormat, error) {
	conv, err := pixfmt.Lookup(name)
	if err != nil {
		return PixelFormat{}, err
	}
	return fromSpec(conv.Spec()), nil
}

// MustFormat is like [Format] but panics on unknown names. Intended
// for registry names known at compile time.
func MustFormat(name string) PixelFormat {
	f, err := Format(name)
	if err != nil {
		panic(fmt.Sprintf("bwd: %v", err))
	}
	return f
}

// FormatNames returns the names of all registered pixel formats, in
// unspecified order.
func FormatNames() []string {
	return pixfmt.Names()
}

func (f PixelFormat) spec() pixfmt.Spec {
	return pixfmt.Spec{
		AlphaMask:     f.AlphaMask,
		RedMask:       f.RedMask,
		GreenMask:     f.GreenMask,
		BlueMask:      f.BlueMask,
		Premultiplied: f.Premultiplied,
	}
}

func fromSpec(s pixfmt.Spec) PixelFormat {
	return PixelFormat{
		AlphaMask:     s.AlphaMask,
		RedMask:       s.RedMask,
		GreenMask:     s.GreenMask,
		BlueMask:      s.BlueMask,
		Premultiplied: s.Premultiplied,
	}
}
