// Package bwd implements the software pixel engine behind a
// cross-toolkit windowing abstraction: premultiplied-ARGB32 snapshot
// caching with dirty-box invalidation, native pixel format conversion,
// and scaled-rectangle resampling.
//
// # Overview
//
// A toolkit adapter wraps its native image as a [NativeImage] (pixel
// read/write callbacks plus a [PixelFormat] mask descriptor) and hands
// it to [New]. The resulting [Image] keeps a lazily allocated,
// premultiplied ARGB32 snapshot of the native pixels:
//
//   - After every draw primitive, the adapter calls [Image.MarkDirty]
//     with the primitive's bounding box in image coordinates.
//   - [Image.Pixels] and [Image.ReadPremultiplied] refresh the snapshot
//     over the current dirty box on demand and serve pixels from it.
//   - [Image.WriteRegion] pushes pixels through the format converter
//     into the native image and invalidates the written region; the
//     native image stays the single source of truth.
//   - [Image.DrawScaled] resamples a rectangle of another image into
//     this one under a selectable [Policy], optionally parallelized by
//     an injected [Parallelizer].
//
// # Quick Start
//
//	native, _ := bwd.NewMemoryImage(640, 480, bwd.MustFormat("ARGB8888"))
//	img, err := bwd.New(native)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// ... adapter draws into the native image ...
//	img.MarkDirty(bwd.Rect{X: 10, Y: 10, Width: 32, Height: 32})
//
//	// Pixels for display flush; refreshes the stale region first.
//	pix, stride := img.Pixels(img.Bounds())
//	_ = pix
//	_ = stride
//
// # Threading
//
// One Image is owned by one thread (or externally synchronized);
// nothing here blocks or performs I/O. Format converters and worker
// pools are safe to share. Resampling is deterministic: the same inputs
// produce bit-identical output whether it runs sequentially or striped
// across a [WorkerPool].
package bwd
