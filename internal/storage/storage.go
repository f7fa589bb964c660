// Package storage defines the durable key-value port backing the portal
// stores. Each piece of state (the session snapshot, the courses collection,
// the assignments collection) lives under its own key as one serialized blob.
// There is no schema version field and no migration path: a shape change
// invalidates old blobs, which the stores treat as absent state.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists under the key.
var ErrKeyNotFound = errors.New("key not found")

// Well-known keys. The config may add a prefix in front of these.
const (
	KeyCurrentUser = "currentUser"
	KeyCourses     = "courses"
	KeyAssignments = "assignments"
)

// Store is a durable key-value blob store.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value under key. Deleting an absent key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}
