// Package texpaint implements an interactive UV-texture painting engine.
//
// # Overview
//
// texpaint lets an application paint directly into the UV texture space of
// a 3D model. An external raycaster supplies a UV coordinate and triangle
// index per input event; texpaint owns the pixel and thickness buffers,
// composites brush strokes with an underpainting depth model, fills
// UV-connected islands, keeps a bounded undo history, and persists state
// through a compact lossy/lossless hybrid codec.
//
// # Quick Start
//
//	import "github.com/gogpu/texpaint"
//
//	surf := texpaint.NewPaintSurface()
//
//	brush := texpaint.Paintbrush{
//		Color:    texpaint.Red,
//		Radius:   16,
//		Opacity:  1,
//		Hardness: 0.8,
//	}
//
//	surf.BeginStroke(brush)
//	surf.PaintAt(0.5, 0.5, brush)
//	surf.EndStroke()
//
//	surf.Undo()
//
// # Architecture
//
// The module is organized into:
//   - Root package: Raster, ThicknessMap, Brush union, StampFactory,
//     PaintSurface compositor, History
//   - uvmesh: UV island graph construction and island fill rasterization
//   - paintstore: persistence codec, versioned schema, key-value store
//     abstraction, autosave manager
//
// # Coordinate System
//
// UV coordinates live in [0,1)² and wrap; V is inverted when mapped to
// pixel rows so that v=0 is the bottom texture row, matching conventional
// texture origin. The raster itself uses top-left origin like image.RGBA.
//
// # Rendering
//
// texpaint never issues GPU calls. It mutates its own CPU buffers and
// signals dirtiness through a callback; uploading the raster to a texture
// is the caller's concern.
package texpaint
