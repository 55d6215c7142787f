// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uvmesh

import "github.com/chewxy/math32"

// Vec2 is a 2D vector used for UV coordinates.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(w Vec2) float32 {
	return math32.Hypot(v.X-w.X, v.Y-w.Y)
}

// Vec3 is a 3D vector used for vertex positions.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}
