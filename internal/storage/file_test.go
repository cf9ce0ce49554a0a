package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinic-state.json")
	store := NewFileStore(path)

	seed := Seed()
	require.NoError(t, store.Save(context.Background(), seed))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(seed.Patients), len(loaded.Patients))
	assert.Equal(t, seed.Patients[0].ID, loaded.Patients[0].ID)
	assert.Equal(t, seed.Visits[1].Diagnoses, loaded.Visits[1].Diagnoses)
	assert.True(t, seed.Payments[1].AmountPaid.Equal(loaded.Payments[1].AmountPaid))
}

func TestFileStoreLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinic-state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path)
	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSnapshot, "malformed is distinct from missing")
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)

	seed := Seed()
	require.NoError(t, store.Save(context.Background(), seed))

	// Mutating the saved value must not leak into the store
	seed.Patients[0].FirstName = "Changed"

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Amani", loaded.Patients[0].FirstName)
}
