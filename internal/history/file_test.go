package history

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	value := []byte(`{"version":1,"records":[]}`)
	if err := storage.Set(StorageKey, value); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok, err := storage.Get(StorageKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected value to be present")
	}
	if !bytes.Equal(got, value) {
		t.Errorf("Get = %q, want %q", got, value)
	}
}

func TestFileStorage_GetMissing(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	_, ok, err := storage.Get("absent")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected ok=false for missing key")
	}
}

func TestFileStorage_RemoveIdempotent(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	if err := storage.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := storage.Remove("k"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := storage.Remove("k"); err != nil {
		t.Errorf("Remove of missing key failed: %v", err)
	}
}

func TestFileStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state", "tarjimon")
	storage := NewFileStorage(dir)

	if err := storage.Set(StorageKey, []byte("{}")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Storage directory was not created: %v", err)
	}
}

func TestFileStorage_SanitizesKey(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(dir)

	if err := storage.Set("weird/key name", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 file, got %d", len(entries))
	}
	name := entries[0].Name()
	if name != "weird_key_name.json" {
		t.Errorf("File name = %q, want 'weird_key_name.json'", name)
	}
}
