package store

import (
	"context"
	"sync"
)

// MemoryStore keeps the document in process memory. Used for development and
// as the repository test double. The mutex guards the stored document only;
// it does not serialize a caller's load-modify-save sequence.
type MemoryStore struct {
	mu  sync.Mutex
	doc *Document
}

// NewMemoryStore creates an empty in-memory document store.
func NewMemoryStore() *MemoryStore {
	doc := &Document{}
	doc.Normalize()
	return &MemoryStore{doc: doc}
}

// Load returns a deep copy of the current document.
func (s *MemoryStore) Load(ctx context.Context) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone(), nil
}

// Save replaces the current document.
func (s *MemoryStore) Save(ctx context.Context, doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	return nil
}
