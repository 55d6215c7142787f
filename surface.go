package texpaint

import (
	"math/rand/v2"
	"time"

	"github.com/gogpu/texpaint/uvmesh"
)

// PaintSurface owns the paint raster and its parallel thickness map for
// one model, and is the single mutation authority over both. It exposes
// painting, island fill, clearing, and snapshot/restore; it is an
// explicit per-model object, never a package singleton.
//
// PaintSurface is not safe for concurrent use. The input layer is
// expected to serialize events; a stroke owns the buffers from
// BeginStroke to EndStroke.
type PaintSurface struct {
	raster      *Raster
	thickness   *ThicknessMap
	history     *History
	stamps      *StampFactory
	maxCoverage float64
	dirty       func()

	// Stroke state.
	stroking  bool
	hasLast   bool
	lastU     float64
	lastV     float64
	lastBrush Brush
}

// NewPaintSurface creates a paint surface. By default the canvas is the
// canonical 2048x2048 opaque white raster with a zeroed thickness map.
func NewPaintSurface(opts ...SurfaceOption) *PaintSurface {
	options := defaultSurfaceOptions()
	for _, opt := range opts {
		opt(&options)
	}

	rng := options.rng
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now<<1|1))
	}

	return &PaintSurface{
		raster:      NewRaster(options.width, options.height),
		thickness:   NewThicknessMap(options.width, options.height),
		history:     NewHistory(options.historyCap),
		stamps:      NewStampFactory(rng),
		maxCoverage: options.maxCoverage,
		dirty:       options.dirty,
	}
}

// Raster returns the surface's color raster.
func (s *PaintSurface) Raster() *Raster { return s.raster }

// Thickness returns the surface's thickness map.
func (s *PaintSurface) Thickness() *ThicknessMap { return s.thickness }

// History returns the surface's undo history.
func (s *PaintSurface) History() *History { return s.history }

// BeginStroke starts a new stroke on pointer-down: it captures exactly
// one undo snapshot before the stroke's first mutation and clears the
// redo stack. Returns false if a stroke is already in progress.
func (s *PaintSurface) BeginStroke(b Brush) bool {
	if s.stroking {
		return false
	}
	s.history.Push(s.Snapshot())
	s.stroking = true
	s.hasLast = false
	s.lastBrush = b
	return true
}

// EndStroke finishes the current stroke on pointer-up.
func (s *PaintSurface) EndStroke() {
	s.stroking = false
	s.hasLast = false
}

// Stroking reports whether a stroke is in progress.
func (s *PaintSurface) Stroking() bool { return s.stroking }

// Tick emulates continuous spray: while a stroke is held with an
// airbrush, the render loop calls Tick once per frame and the surface
// re-applies the brush at the last known UV even without pointer
// movement. Other brush kinds apply only on discrete events, so Tick is
// a no-op for them.
func (s *PaintSurface) Tick() {
	if !s.stroking || !s.hasLast {
		return
	}
	if _, ok := s.lastBrush.(Airbrush); !ok {
		return
	}
	s.PaintAt(s.lastU, s.lastV, s.lastBrush)
}

// FillFace fills the UV island containing the given triangle with the
// fill color: a full replace of every texel in the island's footprint,
// not an underpainting blend. A face with no resolvable island is a
// no-op returning false (nothing is mutated).
func (s *PaintSurface) FillFace(g *uvmesh.IslandGraph, m *uvmesh.Mesh, face int, c RGBA) bool {
	island, ok := g.IslandForFace(face)
	if !ok {
		return false
	}
	r := uint8(clamp255(c.R * 255))
	gc := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	uvmesh.FillIsland(m, g.Island(island), s.raster, r, gc, b, 255)
	s.markDirty()
	return true
}

// Clear resets the canvas: opaque white raster, zero thickness.
// This is the only operation that lowers thickness values.
func (s *PaintSurface) Clear() {
	s.raster.Clear(White)
	s.thickness.Clear()
	s.markDirty()
}

// Snapshot returns deep copies of the live buffers.
func (s *PaintSurface) Snapshot() Snapshot {
	return Snapshot{
		Raster:    s.raster.Clone(),
		Thickness: s.thickness.Clone(),
	}
}

// Restore replaces the live buffers with the given snapshot. Snapshots
// of matching dimensions are copied in place; mismatched ones (from a
// persisted state recorded at another canvas size) are adopted wholesale.
func (s *PaintSurface) Restore(snap Snapshot) {
	if snap.Raster == nil || snap.Thickness == nil {
		return
	}
	if snap.Raster.width == s.raster.width && snap.Raster.height == s.raster.height {
		s.raster.CopyFrom(snap.Raster)
		s.thickness.CopyFrom(snap.Thickness)
	} else {
		s.raster = snap.Raster.Clone()
		s.thickness = snap.Thickness.Clone()
	}
	s.markDirty()
}

// Undo restores the most recent undo snapshot, pushing the live state
// onto the redo stack. A no-op returning false on an empty stack or
// while a stroke is in progress.
func (s *PaintSurface) Undo() bool {
	if s.stroking {
		return false
	}
	snap, ok := s.history.Undo(s.Snapshot())
	if !ok {
		return false
	}
	s.Restore(snap)
	return true
}

// Redo is the symmetric inverse of Undo.
func (s *PaintSurface) Redo() bool {
	if s.stroking {
		return false
	}
	snap, ok := s.history.Redo(s.Snapshot())
	if !ok {
		return false
	}
	s.Restore(snap)
	return true
}

func (s *PaintSurface) markDirty() {
	if s.dirty != nil {
		s.dirty()
	}
}
