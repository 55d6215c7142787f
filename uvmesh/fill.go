// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uvmesh

import (
	"sort"

	"github.com/chewxy/math32"
)

// Canvas is the pixel sink an island fill writes into. texpaint.Raster
// satisfies it; any RGBA8 buffer with byte-exact writes will do.
type Canvas interface {
	Width() int
	Height() int
	SetRGBA(x, y int, r, g, b, a uint8)
}

// FillIsland rasterizes every UV triangle of an island as a filled,
// opaque triangle. The fill is a full byte-exact replace of color and
// alpha within the island's texel footprint; it never blends with the
// undercoat. Texels outside the island are untouched.
//
// Triangles are rasterized in unwrapped UV space using the same mapping
// as painting (px = u*W, py = (1-v)*H) and each pixel write wraps into
// the canvas, so islands parked outside [0,1)² land on the correct
// texels. A single triangle whose corners genuinely straddle the 0/1
// boundary rasterizes on its unwrapped side only.
func FillIsland(m *Mesh, tris []int, dst Canvas, r, g, b, a uint8) {
	w := dst.Width()
	h := dst.Height()
	if w == 0 || h == 0 {
		return
	}
	fw := float32(w)
	fh := float32(h)

	for _, t := range tris {
		ua, ub, uc := m.TriangleUV(t)
		p0 := Vec2{X: ua.X * fw, Y: (1 - ua.Y) * fh}
		p1 := Vec2{X: ub.X * fw, Y: (1 - ub.Y) * fh}
		p2 := Vec2{X: uc.X * fw, Y: (1 - uc.Y) * fh}
		fillTriangle(dst, p0, p1, p2, w, h, r, g, b, a)
	}
}

// edge is one non-horizontal triangle side prepared for scanline
// conversion: x is tracked as a linear function of y.
type edge struct {
	yMin    float32
	yMax    float32
	xAtYMin float32
	dxdy    float32
}

// newEdge builds an edge from two points, normalizing it to run
// downward. Horizontal edges have no scanline extent and are skipped.
func newEdge(p0, p1 Vec2) (edge, bool) {
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	dy := p1.Y - p0.Y
	if dy == 0 {
		return edge{}, false
	}
	return edge{
		yMin:    p0.Y,
		yMax:    p1.Y,
		xAtYMin: p0.X,
		dxdy:    (p1.X - p0.X) / dy,
	}, true
}

// xAt returns the edge's x coordinate at scanline y.
func (e edge) xAt(y float32) float32 {
	return e.xAtYMin + (y-e.yMin)*e.dxdy
}

// fillTriangle scanline-fills one triangle, sampling pixel centers and
// wrapping writes into the canvas.
func fillTriangle(dst Canvas, p0, p1, p2 Vec2, w, h int, r, g, b, a uint8) {
	edges := make([]edge, 0, 3)
	for _, pair := range [3][2]Vec2{{p0, p1}, {p1, p2}, {p2, p0}} {
		if e, ok := newEdge(pair[0], pair[1]); ok {
			edges = append(edges, e)
		}
	}
	if len(edges) < 2 {
		return
	}

	minY := math32.Min(p0.Y, math32.Min(p1.Y, p2.Y))
	maxY := math32.Max(p0.Y, math32.Max(p1.Y, p2.Y))

	yStart := int(math32.Floor(minY))
	yEnd := int(math32.Ceil(maxY))
	xs := make([]float32, 0, 3)

	for y := yStart; y < yEnd; y++ {
		cy := float32(y) + 0.5
		xs = xs[:0]
		for _, e := range edges {
			// Half-open [yMin, yMax) so shared vertices count once.
			if cy >= e.yMin && cy < e.yMax {
				xs = append(xs, e.xAt(cy))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
		x0 := xs[0]
		x1 := xs[len(xs)-1]

		// Pixels whose centers fall inside the span.
		xStart := int(math32.Ceil(x0 - 0.5))
		xEnd := int(math32.Floor(x1 - 0.5))
		for x := xStart; x <= xEnd; x++ {
			dst.SetRGBA(wrapIndex(x, w), wrapIndex(y, h), r, g, b, a)
		}
	}
}

// wrapIndex wraps a pixel coordinate into [0, n).
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
