package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-process graph store for development and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	graphs map[string]*StoredGraph
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{graphs: make(map[string]*StoredGraph)}
}

// Get retrieves a graph by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*StoredGraph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.graphs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *g
	return &cp, nil
}

// Put stores a graph.
func (s *MemoryStore) Put(ctx context.Context, g *StoredGraph) error {
	cp := *g
	s.mu.Lock()
	s.graphs[g.ID] = &cp
	s.mu.Unlock()
	return nil
}

// Delete removes a graph.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.graphs[id]; !ok {
		return ErrNotFound
	}
	delete(s.graphs, id)
	return nil
}

// List returns the IDs of all stored graphs.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.graphs))
	for id := range s.graphs {
		ids = append(ids, id)
	}
	return ids, nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

var _ GraphStore = (*MemoryStore)(nil)
