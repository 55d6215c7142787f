package texpaint

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Exactly three brush kinds exist, and the compositor switches over the
// union in one place:
//   - Paintbrush: hardness-controlled falloff, applied per input event
//   - Airbrush: stochastic Gaussian spray, re-applied every render tick
//     while the pointer is held
//   - Fill: flood-fills a whole UV island, no falloff
//
// Example usage:
//
//	brush := texpaint.Paintbrush{
//		Color:    texpaint.Hex("#FF5733"),
//		Radius:   24,
//		Opacity:  0.8,
//		Hardness: 0.5,
//	}
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	// Only types in this package can implement Brush.
	brushMarker()

	// BrushColor returns the brush's paint color.
	BrushColor() RGBA
}

// Paintbrush is the default brush: a solid dab whose edge falloff is
// controlled by Hardness.
type Paintbrush struct {
	// Color is the paint color.
	Color RGBA

	// Radius is the brush radius in raster pixels. Must be > 0.
	Radius float64

	// Opacity scales stroke strength, in [0, 1].
	Opacity float64

	// Hardness controls edge falloff, in [0, 1]. At 0.95 and above the
	// brush has a sharp edge; lower values widen and soften the falloff.
	Hardness float64
}

// brushMarker implements the sealed Brush interface.
func (Paintbrush) brushMarker() {}

// BrushColor implements Brush.
func (b Paintbrush) BrushColor() RGBA { return b.Color }

// Airbrush sprays individual speckles whose density follows a Gaussian
// profile around the brush center. Each application draws a fresh random
// speckle pattern; repeated applications at one spot converge toward the
// profile.
type Airbrush struct {
	// Color is the paint color.
	Color RGBA

	// Radius is the spray radius in raster pixels. Must be > 0.
	Radius float64

	// Opacity scales stroke strength, in [0, 1]. The compositor applies
	// an additional 0.6 factor, compensated by per-tick application.
	Opacity float64

	// Density scales the per-pixel speckle inclusion probability.
	// Zero means the default of 1.
	Density float64
}

// brushMarker implements the sealed Brush interface.
func (Airbrush) brushMarker() {}

// BrushColor implements Brush.
func (b Airbrush) BrushColor() RGBA { return b.Color }

// Fill replaces the color of every texel of the UV island under the
// pointer. It has no radius and never blends with the undercoat.
type Fill struct {
	// Color is the fill color.
	Color RGBA
}

// brushMarker implements the sealed Brush interface.
func (Fill) brushMarker() {}

// BrushColor implements Brush.
func (b Fill) BrushColor() RGBA { return b.Color }

// density returns the effective speckle density of an airbrush.
func (b Airbrush) density() float64 {
	if b.Density <= 0 {
		return 1
	}
	return b.Density
}
