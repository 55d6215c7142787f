package paintstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrQuotaExceeded is the storage-quota failure class. Store
// implementations wrap it (or return it directly) so the save path can
// match it with errors.Is and retry at reduced quality.
var ErrQuotaExceeded = errors.New("paintstore: storage quota exceeded")

// Store is the key-value persistence backend the save manager writes
// JSON blobs into. Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value for key. The bool reports presence; absence
	// is not an error.
	Get(key string) ([]byte, bool, error)

	// Set writes the value for key. Implementations with bounded
	// capacity return an error matching ErrQuotaExceeded when the write
	// does not fit.
	Set(key string, data []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error
}

// MemStore is an in-memory Store with an optional byte quota. The zero
// quota means unlimited. Tests use the quota to provoke the
// reduced-quality retry path.
type MemStore struct {
	mu    sync.RWMutex
	m     map[string][]byte
	quota int
}

// NewMemStore creates an in-memory store. quota is the total byte limit
// across all values; pass 0 for no limit.
func NewMemStore(quota int) *MemStore {
	return &MemStore{
		m:     make(map[string][]byte),
		quota: quota,
	}
}

// Get implements Store.
func (s *MemStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set implements Store.
func (s *MemStore) Set(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quota > 0 {
		total := len(data)
		for k, v := range s.m {
			if k != key {
				total += len(v)
			}
		}
		if total > s.quota {
			return fmt.Errorf("paintstore: memstore write of %d bytes: %w", len(data), ErrQuotaExceeded)
		}
	}
	v := make([]byte, len(data))
	copy(v, data)
	s.m[key] = v
	return nil
}

// Delete implements Store.
func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

// FileStore persists each key as one file under a root directory.
// Writes go to a uniquely named temp file first and are renamed into
// place, so readers never observe a partial blob.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("paintstore: create store dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get implements Store.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("paintstore: read %q: %w", key, err)
	}
	return data, true, nil
}

// Set implements Store.
func (s *FileStore) Set(key string, data []byte) error {
	tmp := s.path(key) + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("paintstore: write %q: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("paintstore: rename %q: %w", key, err)
	}
	return nil
}

// Delete implements Store.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("paintstore: delete %q: %w", key, err)
	}
	return nil
}

// path maps a key to a file name, replacing separators so keys like
// "texpaint/state" stay inside the root directory.
func (s *FileStore) path(key string) string {
	name := strings.NewReplacer("/", "_", "\\", "_").Replace(key)
	return filepath.Join(s.dir, name+".json")
}
