package texpaint

import "math/rand/v2"

// SurfaceOption configures a PaintSurface during creation.
// Use functional options to customize surface behavior.
//
// Example:
//
//	// Canonical 2048x2048 canvas
//	surf := texpaint.NewPaintSurface()
//
//	// Small canvas with a dirty callback for the render layer
//	surf := texpaint.NewPaintSurface(
//		texpaint.WithSize(512, 512),
//		texpaint.WithDirty(func() { uploadTexture() }),
//	)
type SurfaceOption func(*surfaceOptions)

// surfaceOptions holds optional configuration for surface creation.
type surfaceOptions struct {
	width       int
	height      int
	historyCap  int
	maxCoverage float64
	rng         *rand.Rand
	dirty       func()
}

// defaultSurfaceOptions returns the default surface options.
func defaultSurfaceOptions() surfaceOptions {
	return surfaceOptions{
		width:       CanvasSize,
		height:      CanvasSize,
		historyCap:  DefaultHistoryCap,
		maxCoverage: 0.9,
	}
}

// WithSize sets the raster dimensions. Non-positive values are ignored.
func WithSize(width, height int) SurfaceOption {
	return func(o *surfaceOptions) {
		if width > 0 && height > 0 {
			o.width = width
			o.height = height
		}
	}
}

// WithHistoryCap sets the undo stack depth.
func WithHistoryCap(n int) SurfaceOption {
	return func(o *surfaceOptions) {
		o.historyCap = n
	}
}

// WithMaxCoverage sets the maximum per-application coverage, clamped to
// the [0.85, 0.95] band the compositor is tuned for.
func WithMaxCoverage(c float64) SurfaceOption {
	return func(o *surfaceOptions) {
		if c < 0.85 {
			c = 0.85
		}
		if c > 0.95 {
			c = 0.95
		}
		o.maxCoverage = c
	}
}

// WithRand sets the random source used for airbrush speckle sampling and
// stamp variant selection. Tests pass a fixed-seed source for
// reproducibility.
func WithRand(rng *rand.Rand) SurfaceOption {
	return func(o *surfaceOptions) {
		o.rng = rng
	}
}

// WithDirty sets a callback invoked once after every mutating operation,
// so an external render surface can re-upload the raster.
func WithDirty(fn func()) SurfaceOption {
	return func(o *surfaceOptions) {
		o.dirty = fn
	}
}
