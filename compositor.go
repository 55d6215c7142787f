package texpaint

import "math"

// airbrushOpacityScale damps each airbrush application; the spray is
// re-applied every render tick, which compensates.
const airbrushOpacityScale = 0.6

// thicknessRate converts stroke strength into accumulated paint depth.
const thicknessRate = 0.3

// uvToPixel wraps a UV coordinate into [0,1) and maps it to pixel space.
// The V axis is inverted so v=0 lands on the bottom raster row,
// matching conventional texture origin. Coordinates far outside [0,1)
// (from texture wrapping) are handled by the floating modulo.
func uvToPixel(u, v float64, width, height int) (px, py float64) {
	u = math.Mod(u, 1)
	if u < 0 {
		u++
	}
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	return u * float64(width), (1 - v) * float64(height)
}

// PaintAt composites one brush application centered at the given UV
// coordinate. It mutates the raster and thickness map in place and is
// strictly additive: repeated calls at the same location keep
// accumulating depth. Fill brushes do not paint here; use FillFace.
func (s *PaintSurface) PaintAt(u, v float64, b Brush) {
	s.lastU, s.lastV = u, v
	s.lastBrush = b
	s.hasLast = true

	switch b := b.(type) {
	case Paintbrush:
		if b.Radius <= 0 {
			return
		}
		s.paintFalloff(u, v, b)
	case Airbrush:
		if b.Radius <= 0 {
			return
		}
		s.paintStamp(u, v, b)
	case Fill:
		// Fill has no point application; it operates on whole islands.
		return
	}
	s.markDirty()
}

// paintFalloff is the authoritative per-pixel paintbrush path: the edge
// falloff is evaluated per pixel rather than read from a cached stamp,
// so the blend can never diverge from the stamp synthesis.
func (s *PaintSurface) paintFalloff(u, v float64, b Paintbrush) {
	px, py := uvToPixel(u, v, s.raster.width, s.raster.height)
	r := b.Radius

	x0 := int(math.Floor(px - r))
	x1 := int(math.Ceil(px + r))
	y0 := int(math.Floor(py - r))
	y1 := int(math.Ceil(py + r))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := math.Hypot(float64(x)+0.5-px, float64(y)+0.5-py) / r
			if d >= 1 {
				continue
			}
			falloff := paintbrushFalloff(d, b.Hardness)
			s.blendPixel(x, y, b.Color, b.Opacity*s.maxCoverage*falloff)
		}
	}
}

// paintStamp composites a randomly chosen airbrush stamp variant. The
// stamp's speckle mask supplies the per-pixel falloff weights.
func (s *PaintSurface) paintStamp(u, v float64, b Airbrush) {
	stamp := s.stamps.Pick(b)
	if stamp == nil {
		return
	}
	px, py := uvToPixel(u, v, s.raster.width, s.raster.height)
	half := float64(stamp.size) / 2
	x0 := int(math.Round(px - half))
	y0 := int(math.Round(py - half))

	strength := b.Opacity * airbrushOpacityScale * s.maxCoverage
	for sy := 0; sy < stamp.size; sy++ {
		for sx := 0; sx < stamp.size; sx++ {
			a := stamp.alpha[sy*stamp.size+sx]
			if a == 0 {
				continue
			}
			s.blendPixel(x0+sx, y0+sy, b.Color, strength*float64(a))
		}
	}
}

// blendPixel applies the underpainting blend to one pixel:
// the brush color is mixed with the existing undercoat in proportion to
// accumulated thickness, darkened by the componentwise minimum, then
// lerped over the undercoat by the stroke strength. The raster stays
// fully opaque; depth goes to the thickness map.
func (s *PaintSurface) blendPixel(x, y int, brush RGBA, strength float64) {
	if strength <= 0 {
		return
	}
	if x < 0 || x >= s.raster.width || y < 0 || y >= s.raster.height {
		return
	}

	under := s.raster.GetPixel(x, y)
	bleed := s.thickness.Bleed(x, y)

	mixed := RGBA{
		R: brush.R*(1-bleed) + under.R*0.7*bleed + min(brush.R, under.R)*0.3*bleed,
		G: brush.G*(1-bleed) + under.G*0.7*bleed + min(brush.G, under.G)*0.3*bleed,
		B: brush.B*(1-bleed) + under.B*0.7*bleed + min(brush.B, under.B)*0.3*bleed,
		A: 1,
	}

	final := under.Lerp(mixed, strength)
	final.A = 1
	s.raster.SetPixel(x, y, final)
	s.thickness.Add(x, y, float32(strength*thicknessRate))
}
