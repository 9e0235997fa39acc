// Package argb implements color arithmetic over packed 32-bit ARGB
// values (8 bits per channel, alpha in the top byte).
//
// Values come in two flavors distinguished only by caller convention:
// straight (non-premultiplied) alpha and premultiplied alpha, where the
// R, G and B channels are pre-scaled by A/255. Premultiplied values
// satisfy R <= A, G <= A, B <= A component-wise.
//
// Every function here is a pure, allocation-free integer computation.
// They sit on the per-pixel hot path of snapshot refresh and resampling
// and are called millions of times per full repaint.
package argb

// Channel extraction shifts for packed ARGB32.
const (
	shiftA = 24
	shiftR = 16
	shiftG = 8
	shiftB = 0
)

// Pack assembles an ARGB32 value from its four 8-bit channels.
func Pack(a, r, g, b uint32) uint32 {
	return a<<shiftA | r<<shiftR | g<<shiftG | b<<shiftB
}

// Alpha returns the alpha channel of c.
func Alpha(c uint32) uint32 { return c >> shiftA }

// Red returns the red channel of c.
func Red(c uint32) uint32 { return c >> shiftR & 0xFF }

// Green returns the green channel of c.
func Green(c uint32) uint32 { return c >> shiftG & 0xFF }

// Blue returns the blue channel of c.
func Blue(c uint32) uint32 { return c & 0xFF }

// div255 divides x by 255 exactly, without integer division.
//
// This is Alvy Ray Smith's formula: ((x+1) + ((x+1)>>8)) >> 8. It is
// exact for all inputs up to 65790, which covers every product of two
// 8-bit channels plus carry.
func div255(x uint32) uint32 {
	t := x + 1
	return (t + t>>8) >> 8
}

// mulDiv255Round computes round(c*a/255) for 8-bit c and a.
func mulDiv255Round(c, a uint32) uint32 {
	return (c*a + 127) / 255
}

// Premultiply converts a straight-alpha ARGB32 value to premultiplied
// form: each of R, G, B is scaled by A/255 with round-to-nearest, A is
// unchanged.
func Premultiply(c uint32) uint32 {
	a := Alpha(c)
	if a == 0xFF {
		return c
	}
	if a == 0 {
		return 0
	}
	return Pack(a,
		mulDiv255Round(Red(c), a),
		mulDiv255Round(Green(c), a),
		mulDiv255Round(Blue(c), a))
}

// Unpremultiply converts a premultiplied ARGB32 value back to straight
// alpha. For A == 0 the result is fully transparent black: with no
// alpha there is no color information to recover, and zero is the
// deterministic canonical encoding of that.
//
// Round trip through Premultiply reconstructs each RGB channel within
// +/-1 of the original for any alpha > 0; alpha itself is always exact.
func Unpremultiply(p uint32) uint32 {
	a := Alpha(p)
	switch a {
	case 0xFF:
		return p
	case 0:
		return 0
	}
	return Pack(a,
		(Red(p)*255+a/2)/a,
		(Green(p)*255+a/2)/a,
		(Blue(p)*255+a/2)/a)
}

// SourceOver composites src over dst, both premultiplied, and returns a
// premultiplied result. This is the Porter-Duff source-over operator:
//
//	out = src + dst * (1 - srcAlpha/255)
//
// applied to all four channels. The division by 255 is exact, so a
// fully transparent source leaves dst bit-identical and a fully opaque
// source replaces it bit-identically.
func SourceOver(src, dst uint32) uint32 {
	sa := Alpha(src)
	switch sa {
	case 0xFF:
		return src
	case 0:
		return dst
	}
	inv := 255 - sa
	return Pack(
		sa+div255(Alpha(dst)*inv),
		Red(src)+div255(Red(dst)*inv),
		Green(src)+div255(Green(dst)*inv),
		Blue(src)+div255(Blue(dst)*inv))
}

// Invert complements the R, G and B channels of a straight-alpha value
// and preserves A. Backends without raster XOR composition use this for
// "flip colors" effects.
func Invert(c uint32) uint32 {
	return c&0xFF000000 | ^c&0x00FFFFFF
}
