package paintstore

import (
	"errors"
	"testing"
)

// TestMemStoreQuota tests that the byte quota surfaces as the quota
// error class.
func TestMemStoreQuota(t *testing.T) {
	s := NewMemStore(10)
	if err := s.Set("k", []byte("12345")); err != nil {
		t.Fatalf("small write failed: %v", err)
	}
	err := s.Set("k2", []byte("123456789012"))
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("oversized write error = %v, want ErrQuotaExceeded", err)
	}

	// Overwriting the existing key does not double-count it.
	if err := s.Set("k", []byte("1234567890")); err != nil {
		t.Errorf("in-place overwrite failed: %v", err)
	}
}

// TestMemStoreRoundTrip tests basic get/set/delete.
func TestMemStoreRoundTrip(t *testing.T) {
	s := NewMemStore(0)
	if _, ok, _ := s.Get("missing"); ok {
		t.Error("missing key reported present")
	}
	if err := s.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get("k")
	if err != nil || !ok || string(v) != "v" {
		t.Errorf("Get = (%q, %v, %v), want (v, true, nil)", v, ok, err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Error("deleted key still present")
	}
}

// TestFileStoreRoundTrip tests the file-backed store.
func TestFileStoreRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := s.Set("texpaint/state", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get("texpaint/state")
	if err != nil || !ok || string(v) != `{"v":1}` {
		t.Errorf("Get = (%q, %v, %v)", v, ok, err)
	}

	// Overwrite replaces atomically.
	if err := s.Set("texpaint/state", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = s.Get("texpaint/state")
	if string(v) != `{"v":2}` {
		t.Errorf("after overwrite = %q", v)
	}

	if err := s.Delete("texpaint/state"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get("texpaint/state"); ok {
		t.Error("deleted key still present")
	}
	if err := s.Delete("texpaint/state"); err != nil {
		t.Errorf("double delete errored: %v", err)
	}
}
