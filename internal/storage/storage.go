package storage

import (
	"context"
	"errors"

	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"
)

// ErrNoSnapshot is returned by Load when no snapshot has been saved yet
var ErrNoSnapshot = errors.New("no snapshot stored")

// SnapshotStore persists the full clinic state as a single JSON document.
// The layout carries no schema version; stored documents are trusted as-is
// and derived fields are recomputed by the caller on load.
type SnapshotStore interface {
	Load(ctx context.Context) (*entity.ClinicState, error)
	Save(ctx context.Context, state *entity.ClinicState) error
}
