// ABOUTME: Storage backend contract for persisted documents
// ABOUTME: Key-value semantics shared by the file, sqlite, badger and memory backends
package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the key has never been set (or was deleted).
	ErrNotFound = errors.New("storage: key not found")
	// ErrUnavailable indicates the backing store could not be read or
	// written. Operations that hit it fail outright; there are no retries.
	ErrUnavailable = errors.New("storage: backend unavailable")
)

// Backend persists opaque values under fixed string keys. It is the Go
// counterpart of a browser localStorage area: one value per key, whole-value
// reads and writes, no partial updates.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
