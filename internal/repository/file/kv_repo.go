// Package file stores the key-value entries as one JSON object on local disk,
// the device-scoped counterpart of a browser's local storage.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/baharkarakas/expense-tracker/internal/repository"
)

var ErrCorrupt = errors.New("store file is not a JSON object of strings")

type KVStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]string
}

// Open reads path if it exists. A missing file is an empty store.
func Open(path string) (*KVStore, error) {
	s := &KVStore{path: path, entries: make(map[string]string)}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(b, &s.entries); err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrCorrupt)
	}
	if s.entries == nil {
		s.entries = make(map[string]string)
	}
	return s, nil
}

func (s *KVStore) Path() string { return s.path }

func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

func (s *KVStore) SetMany(_ context.Context, entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]string, len(s.entries)+len(entries))
	for k, v := range s.entries {
		next[k] = v
	}
	for k, v := range entries {
		next[k] = v
	}
	if err := s.write(next); err != nil {
		return err
	}
	s.entries = next
	return nil
}

func (s *KVStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	s.entries = make(map[string]string)
	return nil
}

// write replaces the file atomically: temp file in the same dir, then rename.
func (s *KVStore) write(entries map[string]string) error {
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

var _ repository.KV = (*KVStore)(nil)
