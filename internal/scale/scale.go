// Package scale resamples rectangles of premultiplied ARGB32 pixels.
//
// A draw maps every destination pixel back to a source-space coordinate
// via the per-axis ratio srcSpan/dstSpan and evaluates the selected
// policy there. All arithmetic is integer (52.12 fixed point for the
// coordinate mapping), filtering happens in premultiplied space, and
// the work is partitioned into row stripes that share only read-only
// input and write disjoint output rows, so the output is bit-identical
// whether the injected executor runs one stripe or many in parallel.
package scale

import (
	"golang.org/x/image/math/fixed"

	"github.com/bwdraw/bwd/internal/argb"
	"github.com/bwdraw/bwd/internal/geom"
	"github.com/bwdraw/bwd/internal/parallel"
)

// Policy selects the resampling algorithm.
type Policy uint8

const (
	// Nearest selects the closest source pixel. Fastest, and a pure
	// copy when source and destination spans are equal.
	Nearest Policy = iota

	// Bilinear interpolates between the 4 neighboring source pixels.
	Bilinear

	// BoxAverage averages all source pixels covered by a destination
	// pixel, weighted by coverage. Best for downscaling.
	BoxAverage
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Nearest:
		return "Nearest"
	case Bilinear:
		return "Bilinear"
	case BoxAverage:
		return "BoxAverage"
	default:
		return "Unknown"
	}
}

// Op selects how resampled pixels land in the destination.
type Op uint8

const (
	// Src overwrites destination pixels.
	Src Op = iota

	// Over composites resampled pixels onto the destination with
	// Porter-Duff source-over.
	Over
)

// Buffer is a flat row-major span of premultiplied ARGB32 pixels with
// a scanline stride in pixels.
type Buffer struct {
	Pix    []uint32
	Stride int
}

func (b Buffer) at(x, y int) uint32 {
	return b.Pix[y*b.Stride+x]
}

// fracBits is the fixed-point precision of the coordinate mapping.
const fracBits = 12

// Draw resamples srcRect of src into dstRect of dst under the given
// policy, writing only inside dstClip. Rectangles are in the coordinate
// space of their respective buffers and must lie within them; dstClip
// is intersected with dstRect first. Zero-area source or destination
// rectangles are a no-op.
//
// exec receives the row-stripe tasks; parallel.Sequential{} runs them
// on the calling goroutine.
func Draw(dst Buffer, dstRect, dstClip geom.Box, src Buffer, srcRect geom.Box,
	policy Policy, op Op, exec parallel.Parallelizer) {

	if srcRect.IsEmpty() || dstRect.IsEmpty() {
		return
	}
	clip := dstRect.Intersect(dstClip)
	if clip.IsEmpty() {
		return
	}

	d := &draw{
		dst:     dst,
		dstRect: dstRect,
		clip:    clip,
		src:     src,
		srcRect: srcRect,
		policy:  policy,
		op:      op,
		ratioX:  ratio(srcRect.Width, dstRect.Width),
		ratioY:  ratio(srcRect.Height, dstRect.Height),
	}

	workers := 1
	if exec != nil {
		workers = exec.Workers()
	}
	stripes := workers
	if stripes > clip.Height {
		stripes = clip.Height
	}
	if stripes <= 1 {
		d.rows(clip.Y, clip.Y+clip.Height)
		return
	}

	tasks := make([]func(), 0, stripes)
	per := clip.Height / stripes
	extra := clip.Height % stripes
	y := clip.Y
	for i := 0; i < stripes; i++ {
		h := per
		if i < extra {
			h++
		}
		y0, y1 := y, y+h
		tasks = append(tasks, func() { d.rows(y0, y1) })
		y = y1
	}
	exec.Execute(tasks)
}

// ratio returns srcSpan/dstSpan in 52.12 fixed point, clamped to at
// least one fixed-point unit. Past a 4096x upscale the true ratio
// truncates to zero, which would collapse every footprint; the clamp
// keeps the mapping total and degenerates gracefully to sampling the
// first source pixels.
func ratio(srcSpan, dstSpan int) fixed.Int52_12 {
	r := fixed.Int52_12(int64(srcSpan) << fracBits / int64(dstSpan))
	if r < 1 {
		r = 1
	}
	return r
}

// draw carries the read-only state shared by all row stripes.
type draw struct {
	dst     Buffer
	dstRect geom.Box
	clip    geom.Box
	src     Buffer
	srcRect geom.Box
	policy  Policy
	op      Op
	ratioX  fixed.Int52_12
	ratioY  fixed.Int52_12
}

// rows renders destination rows [y0, y1) of the clip.
func (d *draw) rows(y0, y1 int) {
	switch d.policy {
	case Bilinear:
		d.rowsBilinear(y0, y1)
	case BoxAverage:
		d.rowsBoxAverage(y0, y1)
	default:
		d.rowsNearest(y0, y1)
	}
}

// center maps the center of destination index f back to a source-space
// coordinate in 52.12 fixed point: (f + 0.5) * ratio.
func center(f int, r fixed.Int52_12) int64 {
	return int64(2*f+1) * int64(r) >> 1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (d *draw) store(x, y int, v uint32) {
	i := y*d.dst.Stride + x
	if d.op == Over {
		d.dst.Pix[i] = argb.SourceOver(v, d.dst.Pix[i])
	} else {
		d.dst.Pix[i] = v
	}
}

func (d *draw) rowsNearest(y0, y1 int) {
	// Column map is identical for every row; compute it once per stripe.
	xs := make([]int, d.clip.Width)
	for i := range xs {
		fx := d.clip.X + i - d.dstRect.X
		sx := int(center(fx, d.ratioX) >> fracBits)
		xs[i] = d.srcRect.X + clampInt(sx, 0, d.srcRect.Width-1)
	}
	for y := y0; y < y1; y++ {
		fy := y - d.dstRect.Y
		sy := int(center(fy, d.ratioY) >> fracBits)
		sy = d.srcRect.Y + clampInt(sy, 0, d.srcRect.Height-1)
		srcRow := d.src.Pix[sy*d.src.Stride:]
		for i, sx := range xs {
			d.store(d.clip.X+i, y, srcRow[sx])
		}
	}
}

// bilinearAxis holds the two taps and the fractional weight of one
// destination column or row.
type bilinearAxis struct {
	i0, i1 int
	frac   uint32 // weight of i1, in 1/4096ths
}

func bilinearAxisMap(dstLo, n, dstOrigin, srcOrigin, srcSpan int, r fixed.Int52_12) []bilinearAxis {
	m := make([]bilinearAxis, n)
	for i := range m {
		f := dstLo + i - dstOrigin
		// Center-to-center mapping: (f + 0.5)*ratio - 0.5.
		s := center(f, r) - 1<<(fracBits-1)
		i0 := int(s >> fracBits)
		frac := uint32(s & (1<<fracBits - 1))
		i1 := i0 + 1
		i0 = clampInt(i0, 0, srcSpan-1)
		i1 = clampInt(i1, 0, srcSpan-1)
		m[i] = bilinearAxis{i0: srcOrigin + i0, i1: srcOrigin + i1, frac: frac}
	}
	return m
}

func (d *draw) rowsBilinear(y0, y1 int) {
	const one = 1 << fracBits

	cols := bilinearAxisMap(d.clip.X, d.clip.Width, d.dstRect.X,
		d.srcRect.X, d.srcRect.Width, d.ratioX)
	rowMap := bilinearAxisMap(y0, y1-y0, d.dstRect.Y,
		d.srcRect.Y, d.srcRect.Height, d.ratioY)

	for y := y0; y < y1; y++ {
		ry := rowMap[y-y0]
		wy1 := uint64(ry.frac)
		wy0 := uint64(one - ry.frac)
		row0 := d.src.Pix[ry.i0*d.src.Stride:]
		row1 := d.src.Pix[ry.i1*d.src.Stride:]
		for i, cx := range cols {
			wx1 := uint64(cx.frac)
			wx0 := uint64(one - cx.frac)

			c00 := row0[cx.i0]
			c10 := row0[cx.i1]
			c01 := row1[cx.i0]
			c11 := row1[cx.i1]

			w00 := wx0 * wy0
			w10 := wx1 * wy0
			w01 := wx0 * wy1
			w11 := wx1 * wy1

			var out uint32
			for shift := 0; shift < 32; shift += 8 {
				acc := uint64(c00>>shift&0xFF)*w00 +
					uint64(c10>>shift&0xFF)*w10 +
					uint64(c01>>shift&0xFF)*w01 +
					uint64(c11>>shift&0xFF)*w11
				// Weights sum to exactly 1<<(2*fracBits).
				out |= uint32((acc+1<<(2*fracBits-1))>>(2*fracBits)) << shift
			}
			d.store(d.clip.X+i, y, out)
		}
	}
}

// boxTap is one source index with its coverage weight in 1/4096ths.
type boxTap struct {
	i int
	w uint64
}

// boxTaps is the tap list of one destination index along one axis,
// plus the precomputed weight sum. sum is always positive: a footprint
// that lands entirely past the source edge degenerates to one unit tap
// on the nearest edge pixel.
type boxTaps struct {
	taps []boxTap
	sum  uint64
}

// boxAxisTaps computes, per destination index, the source indices
// covered by that destination pixel's footprint and their coverage
// weights. Edge-to-edge mapping: destination index f covers the source
// span [f*ratio, (f+1)*ratio).
func boxAxisTaps(dstLo, n, dstOrigin, srcOrigin, srcSpan int, r fixed.Int52_12) []boxTaps {
	taps := make([]boxTaps, n)
	for i := range taps {
		f := dstLo + i - dstOrigin
		lo := int64(f) * int64(r)
		hi := int64(f+1) * int64(r)
		iLo := int(lo >> fracBits)
		iHi := int((hi - 1) >> fracBits)
		iLo = clampInt(iLo, 0, srcSpan-1)
		iHi = clampInt(iHi, 0, srcSpan-1)
		t := make([]boxTap, 0, iHi-iLo+1)
		var sum uint64
		for s := iLo; s <= iHi; s++ {
			cellLo := int64(s) << fracBits
			cellHi := cellLo + 1<<fracBits
			w := minInt64(hi, cellHi) - maxInt64(lo, cellLo)
			if w > 0 {
				t = append(t, boxTap{i: srcOrigin + s, w: uint64(w)})
				sum += uint64(w)
			}
		}
		if len(t) == 0 {
			t = append(t, boxTap{i: srcOrigin + iLo, w: 1})
			sum = 1
		}
		taps[i] = boxTaps{taps: t, sum: sum}
	}
	return taps
}

func (d *draw) rowsBoxAverage(y0, y1 int) {
	cols := boxAxisTaps(d.clip.X, d.clip.Width, d.dstRect.X,
		d.srcRect.X, d.srcRect.Width, d.ratioX)
	rowTaps := boxAxisTaps(y0, y1-y0, d.dstRect.Y,
		d.srcRect.Y, d.srcRect.Height, d.ratioY)

	for y := y0; y < y1; y++ {
		rows := rowTaps[y-y0]
		for i, ct := range cols {
			var accA, accR, accG, accB uint64
			for _, rt := range rows.taps {
				srcRow := d.src.Pix[rt.i*d.src.Stride:]
				for _, c := range ct.taps {
					w := rt.w * c.w
					p := srcRow[c.i]
					accA += uint64(p>>24) * w
					accR += uint64(p>>16&0xFF) * w
					accG += uint64(p>>8&0xFF) * w
					accB += uint64(p&0xFF) * w
				}
			}
			// The divisor is the pixel's actual coverage, so edge
			// footprints clipped by the source stay self-consistent.
			total := rows.sum * ct.sum
			half := total / 2
			out := uint32((accA+half)/total)<<24 |
				uint32((accR+half)/total)<<16 |
				uint32((accG+half)/total)<<8 |
				uint32((accB+half)/total)
			d.store(d.clip.X+i, y, out)
		}
	}
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
