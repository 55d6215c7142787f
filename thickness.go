package texpaint

import "github.com/chewxy/math32"

// ThicknessMap records cumulative paint depth, one scalar per raster
// pixel. Values only grow under painting (painting is strictly additive)
// and reset only on an explicit clear. Values may exceed 1 numerically;
// the underpainting bleed saturates visually near 1.
type ThicknessMap struct {
	width  int
	height int
	data   []float32
}

// NewThicknessMap creates a zeroed thickness map parallel to a raster of
// the given dimensions.
func NewThicknessMap(width, height int) *ThicknessMap {
	return &ThicknessMap{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// Width returns the width of the map.
func (t *ThicknessMap) Width() int {
	return t.width
}

// Height returns the height of the map.
func (t *ThicknessMap) Height() int {
	return t.height
}

// Data returns the raw scalar buffer.
func (t *ThicknessMap) Data() []float32 {
	return t.data
}

// At returns the thickness at a pixel, or 0 when out of range.
func (t *ThicknessMap) At(x, y int) float32 {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return 0
	}
	return t.data[y*t.width+x]
}

// Add accumulates paint depth at a pixel. Negative deltas are ignored:
// thickness is monotonically non-decreasing between clears.
func (t *ThicknessMap) Add(x, y int, delta float32) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height || delta <= 0 {
		return
	}
	t.data[y*t.width+x] += delta
}

// Bleed returns the undercoat bleed factor at a pixel: 0.4 times the
// thickness clamped to 1.
func (t *ThicknessMap) Bleed(x, y int) float64 {
	return 0.4 * float64(math32.Min(t.At(x, y), 1))
}

// Clear resets every pixel to zero depth.
func (t *ThicknessMap) Clear() {
	clear(t.data)
}

// Clone returns a deep copy of the map. Used for history snapshots.
func (t *ThicknessMap) Clone() *ThicknessMap {
	c := &ThicknessMap{
		width:  t.width,
		height: t.height,
		data:   make([]float32, len(t.data)),
	}
	copy(c.data, t.data)
	return c
}

// CopyFrom overwrites this map's values with those of src.
// Both maps must have the same dimensions.
func (t *ThicknessMap) CopyFrom(src *ThicknessMap) {
	if t.width != src.width || t.height != src.height {
		return
	}
	copy(t.data, src.data)
}

// Equal reports whether two maps have identical dimensions and values.
func (t *ThicknessMap) Equal(other *ThicknessMap) bool {
	if t.width != other.width || t.height != other.height {
		return false
	}
	for i, v := range t.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}
