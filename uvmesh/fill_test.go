// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uvmesh

import "testing"

// testCanvas is a minimal RGBA8 Canvas for fill tests.
type testCanvas struct {
	w, h int
	pix  []uint8
}

func newTestCanvas(w, h int) *testCanvas {
	return &testCanvas{w: w, h: h, pix: make([]uint8, w*h*4)}
}

func (c *testCanvas) Width() int  { return c.w }
func (c *testCanvas) Height() int { return c.h }

func (c *testCanvas) SetRGBA(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	i := (y*c.w + x) * 4
	c.pix[i], c.pix[i+1], c.pix[i+2], c.pix[i+3] = r, g, b, a
}

func (c *testCanvas) filled(x, y int) bool {
	i := (y*c.w + x) * 4
	return c.pix[i+3] != 0
}

// TestFillIslandQuad tests that a quad island's interior texels are set
// exactly and texels outside stay untouched.
func TestFillIslandQuad(t *testing.T) {
	m := continuousQuad() // UVs span 0.1..0.9
	g := BuildIslands(m)
	dst := newTestCanvas(64, 64)

	FillIsland(m, g.Island(0), dst, 200, 100, 50, 255)

	// The quad footprint is pixels ~6..57 on both axes. Interior texels
	// (one pixel of margin against edge sampling) must be byte-exact.
	for y := 8; y < 56; y++ {
		for x := 8; x < 56; x++ {
			i := (y*64 + x) * 4
			if dst.pix[i] != 200 || dst.pix[i+1] != 100 || dst.pix[i+2] != 50 || dst.pix[i+3] != 255 {
				t.Fatalf("interior texel (%d,%d) = %v, want exact fill color", x, y, dst.pix[i:i+4])
			}
		}
	}

	// Texels clearly outside the footprint are untouched.
	for _, p := range [][2]int{{0, 0}, {63, 0}, {0, 63}, {63, 63}, {3, 32}, {32, 3}} {
		if dst.filled(p[0], p[1]) {
			t.Errorf("outside texel %v was filled", p)
		}
	}
}

// TestFillIslandRespectsIsland tests that filling one island of a
// seamed mesh leaves the other island's texels alone.
func TestFillIslandRespectsIsland(t *testing.T) {
	m := seamedQuad() // left tri UVs 0.05..0.45, right tri 0.55..0.95
	g := BuildIslands(m)
	dst := newTestCanvas(64, 64)

	island, ok := g.IslandForFace(0)
	if !ok {
		t.Fatal("face 0 has no island")
	}
	FillIsland(m, g.Island(island), dst, 255, 0, 0, 255)

	// The right half of the canvas belongs to the other island.
	for y := 0; y < 64; y++ {
		for x := 36; x < 64; x++ {
			if dst.filled(x, y) {
				t.Fatalf("texel (%d,%d) of the unfilled island was painted", x, y)
			}
		}
	}

	// The filled triangle did paint something.
	if !dst.filled(20, 40) {
		t.Error("filled island has no painted texels where expected")
	}
}

// TestFillIslandWraps tests that out-of-range UVs land on wrapped texels.
func TestFillIslandWraps(t *testing.T) {
	m := continuousQuad()
	// Park the island one wrap period to the right.
	for i := range m.UVs {
		m.UVs[i].X += 1
	}
	g := BuildIslands(m)
	dst := newTestCanvas(64, 64)

	FillIsland(m, g.Island(0), dst, 9, 9, 9, 255)

	if !dst.filled(32, 32) {
		t.Error("wrapped island did not land on the canvas")
	}
}

// TestFillDegenerateTriangle tests that zero-area triangles are skipped.
func TestFillDegenerateTriangle(t *testing.T) {
	m := &Mesh{
		Positions: []Vec3{V3(0, 0, 0), V3(1, 0, 0), V3(2, 0, 0)},
		Indices:   []int{0, 1, 2},
		UVs:       []Vec2{V2(0.2, 0.5), V2(0.5, 0.5), V2(0.8, 0.5)},
	}
	g := BuildIslands(m)
	dst := newTestCanvas(32, 32)
	FillIsland(m, g.Island(0), dst, 1, 2, 3, 255)

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if dst.filled(x, y) {
				t.Fatalf("degenerate triangle painted texel (%d,%d)", x, y)
			}
		}
	}
}
