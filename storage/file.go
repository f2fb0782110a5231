// ABOUTME: File-based storage backend
// ABOUTME: One JSON file per key inside a data directory, written atomically
package storage

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// File stores each key as <dir>/<key>.json. Writes go through a uniquely
// named temp file and a rename so a crash never leaves a half-written
// document behind.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, unavailable(err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, unavailable(err)
	}
	return data, nil
}

func (f *File) Set(key string, value []byte) error {
	tmp := filepath.Join(f.dir, key+".tmp-"+uuid.NewString())
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return unavailable(err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		_ = os.Remove(tmp)
		return unavailable(err)
	}
	return nil
}

func (f *File) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return unavailable(err)
	}
	return nil
}
