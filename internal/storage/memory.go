package storage

import (
	"context"
	"sync"

	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"
)

// MemoryStore keeps the snapshot in process memory. It is the default
// backend for tests and for running without any persistence configured.
type MemoryStore struct {
	mu    sync.Mutex
	state *entity.ClinicState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (*entity.ClinicState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == nil {
		return nil, ErrNoSnapshot
	}
	return m.state.Clone(), nil
}

func (m *MemoryStore) Save(ctx context.Context, state *entity.ClinicState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = state.Clone()
	return nil
}
