package paintstore

import (
	"encoding/json"
	"fmt"
)

// SchemaVersion is the current version of the persisted root schema.
//
// History:
//   - v0: a single unnested model payload, no version field
//   - v1: nested {lastModelId, models, version} root
//   - v2: per-model version and canvasSize guaranteed present
const SchemaVersion = 2

// legacyModelID is the model id assigned to a v0 single-model payload,
// which predates model scoping.
const legacyModelID = "default"

// ModelState is the persisted paint state of one model.
type ModelState struct {
	// Raster is the base64 lossy-compressed color image.
	Raster string `json:"raster"`

	// Thickness is the tagged sparse/RLE (or legacy flat) payload.
	Thickness string `json:"thickness"`

	// MaterialID identifies the painted material slot.
	MaterialID string `json:"materialId"`

	// Timestamp is the save time in epoch milliseconds.
	Timestamp int64 `json:"timestamp"`

	// CanvasSize is the raster edge length the state was recorded at.
	CanvasSize int `json:"canvasSize"`

	// Version is the schema version the entry was written under.
	Version int `json:"version"`
}

// Root is the storage root: all models' states plus the id of the model
// that was last active.
type Root struct {
	LastModelID *string               `json:"lastModelId"`
	Models      map[string]ModelState `json:"models"`
	Version     int                   `json:"version"`
}

// newRoot returns an empty current-version root.
func newRoot() Root {
	return Root{
		Models:  make(map[string]ModelState),
		Version: SchemaVersion,
	}
}

// migrations upgrade a root one version step at a time. migrations[n]
// takes a version-n root to version n+1. decodeRoot applies them in
// order, so every historical shape deterministically reaches the
// current schema.
var migrations = []func(Root) Root{
	migrateV0toV1,
	migrateV1toV2,
}

// migrateV0toV1 is a placeholder step: v0 payloads are unnested and are
// wrapped into a v1 root by decodeRoot before the chain runs, so a root
// claiming version 0 only needs its version bumped.
func migrateV0toV1(r Root) Root {
	r.Version = 1
	return r
}

// migrateV1toV2 backfills per-model fields v1 writers omitted.
func migrateV1toV2(r Root) Root {
	for id, st := range r.Models {
		if st.Version == 0 {
			st.Version = 2
		}
		r.Models[id] = st
	}
	r.Version = 2
	return r
}

// decodeRoot parses a stored payload of any historical shape into the
// current schema. A v0 single-model payload (recognized by a top-level
// "raster" field and no "models") is wrapped under legacyModelID first;
// the migration chain then upgrades whatever version was read.
func decodeRoot(data []byte) (Root, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return Root{}, fmt.Errorf("paintstore: root payload: %w", err)
	}

	var root Root
	if _, nested := probe["models"]; nested {
		if err := json.Unmarshal(data, &root); err != nil {
			return Root{}, fmt.Errorf("paintstore: root schema: %w", err)
		}
	} else if _, legacy := probe["raster"]; legacy {
		var st ModelState
		if err := json.Unmarshal(data, &st); err != nil {
			return Root{}, fmt.Errorf("paintstore: legacy model payload: %w", err)
		}
		id := legacyModelID
		root = Root{
			LastModelID: &id,
			Models:      map[string]ModelState{id: st},
			Version:     1,
		}
	} else {
		return Root{}, fmt.Errorf("paintstore: unrecognized root payload")
	}

	if root.Models == nil {
		root.Models = make(map[string]ModelState)
	}
	for root.Version < SchemaVersion {
		step := root.Version
		if step < 0 || step >= len(migrations) {
			return Root{}, fmt.Errorf("paintstore: no migration from version %d", root.Version)
		}
		root = migrations[step](root)
	}
	return root, nil
}

// encodeRoot serializes the root for storage.
func encodeRoot(r Root) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("paintstore: encode root: %w", err)
	}
	return data, nil
}
