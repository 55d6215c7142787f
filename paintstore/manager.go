package paintstore

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/texpaint"
)

// rootKey is the store key the entire paint state root lives under.
const rootKey = "texpaint/state"

// Manager owns the persistence lifecycle of paint surfaces: it loads the
// storage root (upgrading legacy shapes), serializes tracked surfaces on
// request or on a cooperative autosave cadence, and guarantees that no
// persistence failure ever reaches the interactive paint path.
//
// Heavy encoding runs on a background goroutine; the caller's goroutine
// only pays for a buffer snapshot. A single in-flight latch drops (never
// queues) save requests that arrive while one is running.
type Manager struct {
	store Store
	cfg   Config

	mu         sync.Mutex
	root       Root
	modelID    string
	materialID string
	surf       *texpaint.PaintSurface
	lastSave   time.Time

	saving atomic.Bool
	wg     sync.WaitGroup
}

// NewManager creates a manager over the given store, reading and
// migrating any existing root. A corrupt root reads as empty state, not
// an error.
func NewManager(store Store, cfg Config) *Manager {
	m := &Manager{
		store: store,
		cfg:   cfg,
		root:  newRoot(),
	}
	data, ok, err := store.Get(rootKey)
	if err != nil {
		texpaint.Logger().Warn("paintstore: reading root failed, starting empty", "error", err)
		return m
	}
	if !ok {
		return m
	}
	root, err := decodeRoot(data)
	if err != nil {
		texpaint.Logger().Warn("paintstore: discarding corrupt root", "error", err)
		return m
	}
	m.root = root
	return m
}

// Track binds the manager to the surface it should save. The model id
// scopes the persisted entry; the material id is recorded alongside it.
func (m *Manager) Track(modelID, materialID string, surf *texpaint.PaintSurface) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modelID = modelID
	m.materialID = materialID
	m.surf = surf
}

// MaybeAutosave requests a save when the configured autosave interval
// has elapsed. The render loop calls this once per frame; it costs a
// clock read until the interval expires.
func (m *Manager) MaybeAutosave() {
	m.mu.Lock()
	interval := m.cfg.autosaveInterval()
	due := interval > 0 && time.Since(m.lastSave) >= interval
	m.mu.Unlock()
	if due {
		m.RequestSave()
	}
}

// RequestSave snapshots the tracked surface and encodes+writes it on a
// background goroutine. A request arriving while a save is in flight is
// dropped, not queued; the return value reports whether this request was
// accepted.
func (m *Manager) RequestSave() bool {
	m.mu.Lock()
	surf := m.surf
	modelID := m.modelID
	materialID := m.materialID
	m.mu.Unlock()
	if surf == nil {
		return false
	}

	if !m.saving.CompareAndSwap(false, true) {
		texpaint.Logger().Debug("paintstore: save skipped, one in flight")
		return false
	}

	snap := surf.Snapshot()
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer m.saving.Store(false)
		m.write(snap, modelID, materialID)
	}()
	return true
}

// Close flushes state on teardown: it waits out any in-flight save, then
// performs one final blocking save. This is the only blocking write
// path.
func (m *Manager) Close() {
	m.wg.Wait()
	m.mu.Lock()
	surf := m.surf
	modelID := m.modelID
	materialID := m.materialID
	m.mu.Unlock()
	if surf == nil {
		return
	}
	m.write(surf.Snapshot(), modelID, materialID)
}

// write encodes a snapshot and stores the updated root. On a quota
// failure it retries once at reduced quality; if that also fails it
// drops the model's saved state and logs a warning rather than persist
// a partial blob. Nothing is returned: persistence failures never
// surface to the caller.
func (m *Manager) write(snap texpaint.Snapshot, modelID, materialID string) {
	logger := texpaint.Logger()

	if err := m.writeAtQuality(snap, modelID, materialID, m.cfg.JPEGQuality); err == nil {
		return
	} else if !errors.Is(err, ErrQuotaExceeded) {
		logger.Warn("paintstore: save failed", "model", modelID, "error", err)
		return
	}

	logger.Warn("paintstore: quota exceeded, retrying at reduced quality",
		"model", modelID, "quality", m.cfg.RetryQuality)
	err := m.writeAtQuality(snap, modelID, materialID, m.cfg.RetryQuality)
	if err == nil {
		return
	}

	// Still failing: drop this model's state instead of writing a
	// partial or corrupt payload.
	logger.Warn("paintstore: dropping saved state", "model", modelID, "error", err)
	m.mu.Lock()
	delete(m.root.Models, modelID)
	data, encErr := encodeRoot(m.root)
	m.mu.Unlock()
	if encErr == nil {
		if err := m.store.Set(rootKey, data); err != nil {
			logger.Warn("paintstore: dropping saved state failed too", "model", modelID, "error", err)
		}
	}
}

func (m *Manager) writeAtQuality(snap texpaint.Snapshot, modelID, materialID string, quality int) error {
	raster, err := EncodeRaster(snap.Raster, quality)
	if err != nil {
		return err
	}
	state := ModelState{
		Raster:     raster,
		Thickness:  EncodeThickness(snap.Thickness),
		MaterialID: materialID,
		Timestamp:  time.Now().UnixMilli(),
		CanvasSize: snap.Raster.Width(),
		Version:    SchemaVersion,
	}

	m.mu.Lock()
	m.root.Models[modelID] = state
	id := modelID
	m.root.LastModelID = &id
	m.root.Version = SchemaVersion
	data, err := encodeRoot(m.root)
	m.mu.Unlock()
	if err != nil {
		return err
	}

	if err := m.store.Set(rootKey, data); err != nil {
		return err
	}
	m.mu.Lock()
	m.lastSave = time.Now()
	m.mu.Unlock()
	return nil
}

// Load restores a model's persisted state into a surface. Returns false
// when the model has no saved state or its payload fails to decode; a
// decode failure is treated as "no saved state" and never as an error
// during restore.
func (m *Manager) Load(modelID string, surf *texpaint.PaintSurface) bool {
	m.mu.Lock()
	state, ok := m.root.Models[modelID]
	m.mu.Unlock()
	if !ok {
		return false
	}

	size := state.CanvasSize
	if size <= 0 {
		texpaint.Logger().Warn("paintstore: saved state has no canvas size", "model", modelID)
		return false
	}

	raster, err := DecodeRaster(state.Raster, surf.Raster().Width())
	if err != nil {
		texpaint.Logger().Warn("paintstore: raster decode failed", "model", modelID, "error", err)
		return false
	}
	thickness, err := DecodeThickness(state.Thickness, size, size)
	if err != nil {
		texpaint.Logger().Warn("paintstore: thickness decode failed", "model", modelID, "error", err)
		return false
	}
	thickness = rescaleThickness(thickness, surf.Raster().Width(), surf.Raster().Height())

	surf.Restore(texpaint.Snapshot{Raster: raster, Thickness: thickness})
	return true
}

// HasAnySavedState reports whether any model has persisted paint.
func (m *Manager) HasAnySavedState() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.root.Models) > 0
}

// LastModelID returns the id of the most recently saved model.
func (m *Manager) LastModelID() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.root.LastModelID == nil {
		return "", false
	}
	return *m.root.LastModelID, true
}

// ClearAllStates wipes every model's saved state, leaving an empty
// current-version root in the store.
func (m *Manager) ClearAllStates() {
	m.mu.Lock()
	m.root = newRoot()
	data, err := encodeRoot(m.root)
	m.mu.Unlock()
	if err != nil {
		return
	}
	if err := m.store.Set(rootKey, data); err != nil {
		texpaint.Logger().Warn("paintstore: clearing states failed", "error", err)
	}
}
