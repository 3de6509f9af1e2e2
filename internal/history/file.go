package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"codeberg.org/akhadjon/tarjimon/internal"
)

// FileStorage persists each key as a JSON file inside a directory
type FileStorage struct {
	dir string
}

// NewFileStorage creates a file-backed storage rooted at dir. The
// directory is created on first write.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.dir, internal.SanitizeKey(key)+".json")
}

func (f *FileStorage) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", f.path(key), err)
	}
	return data, true, nil
}

func (f *FileStorage) Set(key string, value []byte) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	if err := os.WriteFile(f.path(key), value, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path(key), err)
	}
	return nil
}

func (f *FileStorage) Remove(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", f.path(key), err)
	}
	return nil
}
