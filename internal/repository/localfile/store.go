// Package localfile persists annotation state as named JSON slots on the
// local filesystem, one file per slot. Loads degrade to empty state on any
// malformed content; saves replace the slot wholesale through a temp file
// and rename so a single writer never observes a torn slot.
package localfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store manages the slot files under a single data directory.
type Store struct {
	dir string

	// Serializes temp-file writes when the HTTP glue shares one instance.
	// This does not extend the single-writer contract across processes.
	mu sync.Mutex
}

// NewStore creates the data directory if needed and returns a Store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localfile: create data dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// readSlot returns the raw slot content. A missing or unreadable slot is
// reported as absent, never as an error; the stores treat both as empty.
func (s *Store) readSlot(name string) ([]byte, bool) {
	data, err := os.ReadFile(s.slotPath(name))
	if err != nil {
		// Unreadable slots degrade to empty just like corrupt ones.
		return nil, false
	}
	return data, true
}

// writeSlot replaces the slot content atomically from the perspective of a
// single writer.
func (s *Store) writeSlot(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.slotPath(name)
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("localfile: create temp slot for %s: %w", name, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("localfile: write slot %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("localfile: close slot %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("localfile: replace slot %s: %w", name, err)
	}
	return nil
}

func (s *Store) slotPath(name string) string {
	return filepath.Join(s.dir, name+".json")
}
