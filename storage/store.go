// Package storage persists keyed JSON records under a single data
// directory, one file per key. It is the durable half of the history
// and preset collections.
package storage

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
)

// Store reads and writes JSON records named by key. Concurrency
// control belongs to the owning managers; the Store only guarantees
// that each Save lands via an atomic rename.
type Store struct {
	dir string
}

// NewStore creates the data directory if it does not exist.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load decodes the record for key into a fresh T. A missing record
// yields the zero T. A record that no longer decodes is logged,
// deleted, and also yields the zero T — a corrupt file never wedges
// startup and is never returned partially parsed. Only unexpected
// I/O failures surface as errors.
func Load[T any](s *Store, key string) (T, error) {
	var zero T
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return zero, nil
		}
		return zero, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Printf("storage: discarding corrupt record %q: %v", key, err)
		return zero, s.Clear(key)
	}
	return v, nil
}

// Save writes v as the record for key via a temp file and rename.
func (s *Store) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

// Clear removes the record for key. A missing record is not an error.
func (s *Store) Clear(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
