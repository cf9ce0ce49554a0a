package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"
)

// FileStore persists the snapshot as a JSON file on disk. Two processes
// pointed at the same path overwrite each other; last writer wins.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load(ctx context.Context) (*entity.ClinicState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var state entity.ClinicState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
	}
	return &state, nil
}

func (f *FileStore) Save(ctx context.Context, state *entity.ClinicState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	// Write to a temp file in the same directory, then rename, so a crash
	// mid-write never leaves a truncated snapshot behind.
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "clinic-state-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
