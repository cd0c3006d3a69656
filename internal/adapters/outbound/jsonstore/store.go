package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zestyzomato/zesty/internal/domain"
)

// Store is a single-file JSON implementation of domain.SnapshotStore.
type Store struct {
	path string
}

// New creates a store that reads and writes path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store writes to.
func (s *Store) Path() string { return s.path }

// Load reads the snapshot from disk. Returns (nil, nil) if the file does not exist.
func (s *Store) Load() (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil // nothing saved yet is not an error
		}
		return nil, err
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrSnapshotCorrupt, s.path, err)
	}
	if snap.Menu == nil {
		snap.Menu = make(map[string]domain.Dish)
	}
	if snap.Orders == nil {
		snap.Orders = make(map[int]domain.Order)
	}
	return &snap, nil
}

// Save replaces the file with snap. The data goes to a temporary file in the
// same directory first and is renamed over the destination.
func (s *Store) Save(snap *domain.Snapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
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
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
