// Command texpaintdemo paints a few strokes and an island fill into a
// texpaint surface and writes the result to a PNG.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/gogpu/texpaint"
	"github.com/gogpu/texpaint/uvmesh"
)

func main() {
	var (
		size   = flag.Int("size", 512, "canvas size")
		output = flag.String("output", "paint.png", "output file")
	)
	flag.Parse()

	surf := texpaint.NewPaintSurface(texpaint.WithSize(*size, *size))

	// A wavy paintbrush stroke.
	brush := texpaint.Paintbrush{
		Color:    texpaint.Hex("#C0392B"),
		Radius:   18,
		Opacity:  0.9,
		Hardness: 0.6,
	}
	surf.BeginStroke(brush)
	for i := 0; i <= 200; i++ {
		t := float64(i) / 200
		u := 0.15 + 0.7*t
		v := 0.7 + 0.15*math.Sin(t*4*math.Pi)
		surf.PaintAt(u, v, brush)
	}
	surf.EndStroke()

	// An airbrush cloud: held in place, re-applied per tick.
	air := texpaint.Airbrush{
		Color:   texpaint.Hex("#2980B9"),
		Radius:  48,
		Opacity: 0.8,
	}
	surf.BeginStroke(air)
	surf.PaintAt(0.3, 0.35, air)
	for i := 0; i < 80; i++ {
		surf.Tick()
	}
	surf.EndStroke()

	// Fill one UV island of a small quad mesh.
	mesh := quadMesh()
	graph := uvmesh.BuildIslands(mesh)
	surf.BeginStroke(texpaint.Fill{Color: texpaint.Hex("#27AE60")})
	surf.FillFace(graph, mesh, 0, texpaint.Hex("#27AE60"))
	surf.EndStroke()

	if err := surf.Raster().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *size, *size)
}

// quadMesh returns a single quad occupying UV (0.55,0.1)-(0.9,0.45).
func quadMesh() *uvmesh.Mesh {
	return &uvmesh.Mesh{
		Positions: []uvmesh.Vec3{
			uvmesh.V3(0, 0, 0),
			uvmesh.V3(1, 0, 0),
			uvmesh.V3(1, 1, 0),
			uvmesh.V3(0, 1, 0),
		},
		Indices: []int{0, 1, 2, 0, 2, 3},
		UVs: []uvmesh.Vec2{
			uvmesh.V2(0.55, 0.1),
			uvmesh.V2(0.9, 0.1),
			uvmesh.V2(0.9, 0.45),
			uvmesh.V2(0.55, 0.1),
			uvmesh.V2(0.9, 0.45),
			uvmesh.V2(0.55, 0.45),
		},
	}
}
