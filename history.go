package texpaint

// DefaultHistoryCap is the default undo stack depth.
const DefaultHistoryCap = 20

// Snapshot is one captured paint state: a raster copy plus a thickness
// copy. Snapshots are immutable once pushed; the surface always clones
// its live buffers before handing them to History.
type Snapshot struct {
	Raster    *Raster
	Thickness *ThicknessMap
}

// History is a bounded undo/redo snapshot stack. The undo stack holds at
// most cap entries, evicting the oldest on overflow; any new stroke
// clears the redo stack. Undo and redo on empty stacks are no-ops, not
// errors.
type History struct {
	cap  int
	undo []Snapshot
	redo []Snapshot
}

// NewHistory creates a history with the given capacity. Non-positive
// capacities fall back to DefaultHistoryCap.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCap
	}
	return &History{cap: capacity}
}

// Push records the pre-stroke state. It is called exactly once per
// stroke, immediately before its first mutation. Pushing clears the redo
// stack and evicts the oldest snapshot when the stack is full.
func (h *History) Push(s Snapshot) {
	if len(h.undo) >= h.cap {
		n := copy(h.undo, h.undo[1:])
		h.undo = h.undo[:n]
	}
	h.undo = append(h.undo, s)
	h.redo = h.redo[:0]
}

// Undo pops the most recent snapshot, pushing the live state onto the
// redo stack. Returns false (and leaves live untouched) when the undo
// stack is empty.
func (h *History) Undo(live Snapshot) (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, live)
	return top, true
}

// Redo is the symmetric inverse of Undo.
func (h *History) Redo(live Snapshot) (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, live)
	return top, true
}

// UndoDepth returns the number of undoable snapshots.
func (h *History) UndoDepth() int { return len(h.undo) }

// RedoDepth returns the number of redoable snapshots.
func (h *History) RedoDepth() int { return len(h.redo) }
