// Package storage persists the tracker state tree to a local JSON file and
// keeps it reconciled with the sync server.
package storage

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/okoshkina/fittrack/internal/models"
)

// FileStore writes the whole state snapshot to a single JSON file. It
// implements tracker.Saver, so every store mutation lands here.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a FileStore writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted snapshot. A missing file is not an error: it
// returns a zero snapshot, which the caller seeds as a fresh install.
func (fs *FileStore) Load() (models.Snapshot, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	f, err := os.Open(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Snapshot{}, nil
		}
		return models.Snapshot{}, err
	}
	defer f.Close()

	var snap models.Snapshot
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return models.Snapshot{}, err
	}
	return snap, nil
}

// Save overwrites the file with the given snapshot.
func (fs *FileStore) Save(snap models.Snapshot) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	f, err := os.Create(fs.path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(snap)
}
