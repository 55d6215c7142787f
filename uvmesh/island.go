// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uvmesh

// uvEpsilon is the maximum per-axis UV distance at which two corners on
// a shared 3D edge still count as continuous. Comparison happens on raw
// (unwrapped) coordinates, so a triangle pair straddling the 0/1 wrap
// boundary reads as a seam and lands in separate islands.
const uvEpsilon = 1e-4

// IslandGraph is the precomputed partition of a mesh into UV islands.
// Build it once per mesh at load time; lookups are O(1).
type IslandGraph struct {
	islands    [][]int
	faceIsland []int
}

// edgeKey identifies an undirected 3D edge by its vertex index pair.
type edgeKey struct {
	lo, hi int
}

// edgeRef records one triangle's use of a 3D edge, with the UV
// coordinates that triangle assigns to the edge's endpoints.
type edgeRef struct {
	tri  int
	uvLo Vec2
	uvHi Vec2
}

// BuildIslands flood-fills triangle adjacency into maximal UV islands.
// Two triangles are adjacent only when they share a 3D edge AND their UV
// coordinates match continuously across it; a UV seam breaks adjacency
// even for 3D neighbors. Every triangle is visited exactly once and
// belongs to exactly one island.
func BuildIslands(m *Mesh) *IslandGraph {
	triCount := m.TriangleCount()
	g := &IslandGraph{
		faceIsland: make([]int, triCount),
	}
	for i := range g.faceIsland {
		g.faceIsland[i] = -1
	}

	edges := make(map[edgeKey][]edgeRef)
	for t := 0; t < triCount; t++ {
		for c := 0; c < 3; c++ {
			i0 := 3*t + c
			i1 := 3*t + (c+1)%3
			v0, v1 := m.Indices[i0], m.Indices[i1]
			uv0, uv1 := m.UVs[i0], m.UVs[i1]
			if v0 > v1 {
				v0, v1 = v1, v0
				uv0, uv1 = uv1, uv0
			}
			key := edgeKey{lo: v0, hi: v1}
			edges[key] = append(edges[key], edgeRef{tri: t, uvLo: uv0, uvHi: uv1})
		}
	}

	// Adjacency lists: triangles joined by a UV-continuous shared edge.
	adj := make([][]int, triCount)
	for _, refs := range edges {
		for i := 0; i < len(refs); i++ {
			for j := i + 1; j < len(refs); j++ {
				if uvContinuous(refs[i], refs[j]) {
					adj[refs[i].tri] = append(adj[refs[i].tri], refs[j].tri)
					adj[refs[j].tri] = append(adj[refs[j].tri], refs[i].tri)
				}
			}
		}
	}

	queue := make([]int, 0, triCount)
	for seed := 0; seed < triCount; seed++ {
		if g.faceIsland[seed] >= 0 {
			continue
		}
		island := len(g.islands)
		members := []int{seed}
		g.faceIsland[seed] = island
		queue = append(queue[:0], seed)
		for len(queue) > 0 {
			t := queue[0]
			queue = queue[1:]
			for _, n := range adj[t] {
				if g.faceIsland[n] >= 0 {
					continue
				}
				g.faceIsland[n] = island
				members = append(members, n)
				queue = append(queue, n)
			}
		}
		g.islands = append(g.islands, members)
	}

	return g
}

// uvContinuous reports whether two uses of the same 3D edge agree on its
// UV coordinates within uvEpsilon.
func uvContinuous(a, b edgeRef) bool {
	return uvClose(a.uvLo, b.uvLo) && uvClose(a.uvHi, b.uvHi)
}

func uvClose(a, b Vec2) bool {
	du := a.X - b.X
	dv := a.Y - b.Y
	if du < 0 {
		du = -du
	}
	if dv < 0 {
		dv = -dv
	}
	return du < uvEpsilon && dv < uvEpsilon
}

// IslandCount returns the number of islands.
func (g *IslandGraph) IslandCount() int {
	return len(g.islands)
}

// Island returns the triangle indices of island i.
func (g *IslandGraph) Island(i int) []int {
	return g.islands[i]
}

// IslandForFace returns the island containing the given triangle.
// The second result is false when the face index is out of range.
func (g *IslandGraph) IslandForFace(face int) (int, bool) {
	if face < 0 || face >= len(g.faceIsland) {
		return 0, false
	}
	return g.faceIsland[face], true
}
