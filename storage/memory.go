package storage

import (
	"context"
	"sync"

	"flowboard/diagram"
)

// MemoryStore keeps the document in process memory. Used in tests and when
// no redis address is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save overwrites the stored document.
func (s *MemoryStore) Save(_ context.Context, d *diagram.Diagram) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Load restores the stored document, or ErrNotSaved.
func (s *MemoryStore) Load(_ context.Context) (*diagram.Diagram, error) {
	s.mu.RLock()
	data := s.data
	s.mu.RUnlock()
	if data == nil {
		return nil, ErrNotSaved
	}
	return Unmarshal(data)
}
