package paintstore

import "testing"

// TestDecodeRootCurrent tests parsing a current-version root.
func TestDecodeRootCurrent(t *testing.T) {
	payload := `{
		"lastModelId": "mug",
		"models": {"mug": {"raster": "x", "thickness": "sparse:[]", "materialId": "m0",
			"timestamp": 1700000000000, "canvasSize": 2048, "version": 2}},
		"version": 2
	}`
	root, err := decodeRoot([]byte(payload))
	if err != nil {
		t.Fatalf("decodeRoot: %v", err)
	}
	if root.Version != SchemaVersion {
		t.Errorf("version = %d, want %d", root.Version, SchemaVersion)
	}
	if root.LastModelID == nil || *root.LastModelID != "mug" {
		t.Errorf("lastModelId = %v, want mug", root.LastModelID)
	}
	if _, ok := root.Models["mug"]; !ok {
		t.Error("model entry missing")
	}
}

// TestDecodeRootLegacySingleModel tests the transparent v0 upgrade: an
// unnested payload becomes a nested root under the default model id.
func TestDecodeRootLegacySingleModel(t *testing.T) {
	payload := `{"raster": "x", "thickness": "[0.1]", "materialId": "m0",
		"timestamp": 1600000000000, "canvasSize": 1024}`
	root, err := decodeRoot([]byte(payload))
	if err != nil {
		t.Fatalf("decodeRoot: %v", err)
	}
	if root.Version != SchemaVersion {
		t.Errorf("version = %d, want %d", root.Version, SchemaVersion)
	}
	st, ok := root.Models[legacyModelID]
	if !ok {
		t.Fatalf("legacy payload not nested under %q", legacyModelID)
	}
	if st.CanvasSize != 1024 || st.MaterialID != "m0" {
		t.Errorf("migrated state = %+v", st)
	}
	if root.LastModelID == nil || *root.LastModelID != legacyModelID {
		t.Error("lastModelId not set to the legacy model")
	}
}

// TestDecodeRootV1Chain tests the v1 -> v2 migration step.
func TestDecodeRootV1Chain(t *testing.T) {
	payload := `{
		"lastModelId": "a",
		"models": {"a": {"raster": "x", "thickness": "rle:[]", "materialId": "m",
			"timestamp": 1, "canvasSize": 512}},
		"version": 1
	}`
	root, err := decodeRoot([]byte(payload))
	if err != nil {
		t.Fatalf("decodeRoot: %v", err)
	}
	if root.Version != 2 {
		t.Errorf("version = %d, want 2", root.Version)
	}
	if got := root.Models["a"].Version; got != 2 {
		t.Errorf("model version backfill = %d, want 2", got)
	}
}

// TestDecodeRootErrors tests rejection of unusable payloads.
func TestDecodeRootErrors(t *testing.T) {
	for _, payload := range []string{
		"not json",
		`{"something": "else"}`,
		`[1,2,3]`,
	} {
		if _, err := decodeRoot([]byte(payload)); err == nil {
			t.Errorf("decodeRoot(%q) succeeded, want error", payload)
		}
	}
}
