// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package uvmesh partitions the triangles of a 3D mesh into UV islands
// and rasterizes island fills into a paint canvas.
//
// A UV island is a maximal set of triangles connected through shared 3D
// edges whose UV coordinates are continuous across those edges. A UV
// seam (3D-adjacent triangles mapped to disjoint texture regions) breaks
// adjacency, so seams always separate islands.
package uvmesh

// Mesh is an indexed triangle mesh with per-corner UV coordinates.
// Positions are shared through Indices; UVs are stored per corner
// (one per index entry) because vertices on a UV seam carry different
// texture coordinates in each adjacent triangle.
type Mesh struct {
	// Positions holds the shared vertex positions.
	Positions []Vec3

	// Indices holds three vertex indices per triangle.
	Indices []int

	// UVs holds one texture coordinate per index entry, so
	// len(UVs) == len(Indices).
	UVs []Vec2
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three vertex indices of triangle t.
func (m *Mesh) Triangle(t int) (a, b, c int) {
	return m.Indices[3*t], m.Indices[3*t+1], m.Indices[3*t+2]
}

// TriangleUV returns the three corner UVs of triangle t.
func (m *Mesh) TriangleUV(t int) (ua, ub, uc Vec2) {
	return m.UVs[3*t], m.UVs[3*t+1], m.UVs[3*t+2]
}
