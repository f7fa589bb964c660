// Package memstore keeps portal state in an in-process map. Used by tests
// and as a throwaway backend; nothing survives a restart.
package memstore

import (
	"context"
	"sync"

	"github.com/derin/uniportal/internal/storage"
)

// Store is a mutex-guarded in-memory blob store.
type Store struct {
	mutex sync.RWMutex
	table map[string][]byte
}

// New returns an empty Store.
func New() *Store {
	return &Store{table: make(map[string][]byte)}
}

// Get returns the blob stored under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.table[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

// Set writes the blob under key.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.table[key] = cp
	return nil
}

// Delete removes the blob under key.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.table, key)
	return nil
}

// Close implements storage.Store.
func (s *Store) Close() error { return nil }
