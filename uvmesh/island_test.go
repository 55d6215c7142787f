// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uvmesh

import "testing"

// continuousQuad returns two triangles sharing a 3D edge with matching
// UVs across it: one island.
func continuousQuad() *Mesh {
	return &Mesh{
		Positions: []Vec3{
			V3(0, 0, 0), V3(1, 0, 0), V3(1, 1, 0), V3(0, 1, 0),
		},
		Indices: []int{0, 1, 2, 0, 2, 3},
		UVs: []Vec2{
			V2(0.1, 0.1), V2(0.9, 0.1), V2(0.9, 0.9),
			V2(0.1, 0.1), V2(0.9, 0.9), V2(0.1, 0.9),
		},
	}
}

// seamedQuad returns the same geometry with a UV seam along the shared
// edge: two islands despite 3D adjacency.
func seamedQuad() *Mesh {
	return &Mesh{
		Positions: []Vec3{
			V3(0, 0, 0), V3(1, 0, 0), V3(1, 1, 0), V3(0, 1, 0),
		},
		Indices: []int{0, 1, 2, 0, 2, 3},
		UVs: []Vec2{
			V2(0.05, 0.1), V2(0.45, 0.1), V2(0.45, 0.9),
			V2(0.55, 0.1), V2(0.95, 0.9), V2(0.55, 0.9),
		},
	}
}

// TestBuildIslandsContinuous tests that UV-continuous neighbors merge.
func TestBuildIslandsContinuous(t *testing.T) {
	g := BuildIslands(continuousQuad())
	if g.IslandCount() != 1 {
		t.Fatalf("islands = %d, want 1", g.IslandCount())
	}
	if len(g.Island(0)) != 2 {
		t.Errorf("island size = %d, want 2", len(g.Island(0)))
	}
}

// TestBuildIslandsSeam tests that a UV seam separates 3D neighbors.
func TestBuildIslandsSeam(t *testing.T) {
	g := BuildIslands(seamedQuad())
	if g.IslandCount() != 2 {
		t.Fatalf("islands = %d, want 2", g.IslandCount())
	}
}

// TestBuildIslandsPartition tests that every triangle lands in exactly
// one island.
func TestBuildIslandsPartition(t *testing.T) {
	meshes := []*Mesh{continuousQuad(), seamedQuad()}
	for _, m := range meshes {
		g := BuildIslands(m)
		seen := make(map[int]int)
		for i := 0; i < g.IslandCount(); i++ {
			for _, tri := range g.Island(i) {
				seen[tri]++
			}
		}
		for tri := 0; tri < m.TriangleCount(); tri++ {
			if seen[tri] != 1 {
				t.Errorf("triangle %d appears in %d islands, want 1", tri, seen[tri])
			}
			island, ok := g.IslandForFace(tri)
			if !ok {
				t.Fatalf("IslandForFace(%d) missed", tri)
			}
			found := false
			for _, member := range g.Island(island) {
				if member == tri {
					found = true
				}
			}
			if !found {
				t.Errorf("IslandForFace(%d) = %d, but island lacks the face", tri, island)
			}
		}
	}
}

// TestIslandForFaceOutOfRange tests lookup misses.
func TestIslandForFaceOutOfRange(t *testing.T) {
	g := BuildIslands(continuousQuad())
	if _, ok := g.IslandForFace(-1); ok {
		t.Error("negative face resolved to an island")
	}
	if _, ok := g.IslandForFace(99); ok {
		t.Error("out-of-range face resolved to an island")
	}
}

// TestBuildIslandsWrapSeam tests that a pair straddling the 0/1 wrap
// boundary reads as a seam on raw coordinates.
func TestBuildIslandsWrapSeam(t *testing.T) {
	m := continuousQuad()
	// Shift the second triangle's UVs a full wrap period.
	for i := 3; i < 6; i++ {
		m.UVs[i].X += 1
	}
	g := BuildIslands(m)
	if g.IslandCount() != 2 {
		t.Errorf("islands = %d, want 2 (wrap offset is a seam)", g.IslandCount())
	}
}
