package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/docindex"
)

// StoreFile writes a document store as a JSON object keyed by URL, the
// lookup half of a site index that a browser search client loads.
// The file is written next to its final path and renamed into place, so
// readers never observe a partial store.
type StoreFile struct {
	path string
}

// NewStoreFile creates a StoreFile writing to path.
func NewStoreFile(path string) *StoreFile {
	return &StoreFile{path: path}
}

func (f *StoreFile) tempPath() string {
	return f.path + ".tmp"
}

// Write encodes store and atomically replaces the file. Keys are written in
// sorted order so identical stores produce identical files.
func (f *StoreFile) Write(store docindex.Store) error {
	if store == nil {
		store = docindex.Store{}
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(f.tempPath(), append(data, '\n'), 0644); err != nil {
		return err
	}
	if err := os.Rename(f.tempPath(), f.path); err != nil {
		_ = os.Remove(f.tempPath())
		return err
	}
	return nil
}

// Read decodes a store previously written with Write.
// Returns ENOTFOUND if the file does not exist.
func (f *StoreFile) Read() (docindex.Store, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "store file %q not found", f.path)
	} else if err != nil {
		return nil, err
	}

	var store docindex.Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "invalid store file: %s", err)
	}
	return store, nil
}
