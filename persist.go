package grana

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Persister is the storage port of the ledger. The Store notifies it
// after every successful state transition; a failed save is logged and
// otherwise ignored (a crash between the state change and the write is
// an accepted data loss window, not something the core retries).
type Persister interface {
	// Load returns the persisted document, or ok=false when none
	// exists yet.
	Load() (data AppData, ok bool, err error)
	// Save replaces the persisted document.
	Save(data AppData) error
}

// FileStore persists the whole document as one JSON file.
type FileStore struct {
	Path string
}

// NewFileStore returns a FileStore writing to path.
func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

// Load reads and decodes the document file. A missing file is not an
// error, it just means a fresh ledger.
func (s *FileStore) Load() (AppData, bool, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return AppData{}, false, nil
	}
	if err != nil {
		return AppData{}, false, fmt.Errorf("could not open ledger file %q: %w", s.Path, err)
	}
	defer f.Close()

	var data AppData
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		return AppData{}, false, fmt.Errorf("could not decode ledger file %q: %w", s.Path, err)
	}
	return data, true, nil
}

// Save encodes the document to a temporary file and renames it into
// place, so a crash mid-write never leaves a torn document behind.
func (s *FileStore) Save(data AppData) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("could not create ledger directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), ".grana-*.json")
	if err != nil {
		return fmt.Errorf("could not create temporary ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.Path)
}

var _ Persister = (*FileStore)(nil)
