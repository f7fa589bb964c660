// Package filestore persists each key as a single JSON blob file under a
// data directory. It is the default backend and mirrors the browser-local
// storage the portal state was originally kept in.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/derin/uniportal/internal/storage"
)

// Store is a file-per-key blob store rooted at a directory.
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a Store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// path maps a key to its backing file. Keys are store-chosen constants, the
// replacement only guards against a separator sneaking into a configured
// prefix.
func (s *Store) path(key string) string {
	name := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, name+".json")
}

// Get returns the blob stored under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Set writes the blob under key, replacing any previous value.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes the blob under key. Absent keys are not an error.
func (s *Store) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close implements storage.Store. Nothing to release.
func (s *Store) Close() error { return nil }
