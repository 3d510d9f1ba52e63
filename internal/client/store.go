package client

import "sync"

// Store is the in-memory response cache shared by the resource accessors.
// Collections are keyed by resource name, single items by name/id. Reads
// populate entries; only successful mutations invalidate them. The zero
// Store is not usable, construct with NewStore.
type Store struct {
	mu      sync.RWMutex
	entries map[string]any
}

func NewStore() *Store {
	return &Store{entries: make(map[string]any)}
}

func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	return value, ok
}

func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}

// Invalidate drops the given entries so the next read refetches.
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.entries, key)
	}
}
