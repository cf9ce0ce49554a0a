package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"
	"github.com/ahmadeq/test-clinic-demo/internal/storage"

	"github.com/sirupsen/logrus"
)

// Store is the single source of truth for the clinic state. All mutation
// goes through Dispatch; readers get deep-copied snapshots. After every
// successful mutation the full state is saved to the snapshot store; a
// failed save is logged and swallowed, the in-memory state stays
// authoritative for the session.
type Store struct {
	mu        sync.Mutex
	state     *entity.ClinicState
	snapshots storage.SnapshotStore
	log       *logrus.Logger
	now       func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the clock used for timestamps and derived ages
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a Store. Call Load before serving reads or mutations.
func New(snapshots storage.SnapshotStore, log *logrus.Logger, opts ...Option) *Store {
	s := &Store{
		state:     entity.NewClinicState(),
		snapshots: snapshots,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load rehydrates the state from the snapshot store. A missing or malformed
// snapshot falls back to the seed dataset; the failure is logged, never
// surfaced. Patient ages are recomputed and contact blocks re-sanitized
// regardless of where the state came from.
func (s *Store) Load(ctx context.Context) {
	state, err := s.snapshots.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSnapshot) {
			s.log.Warnf("Failed to load snapshot, falling back to seed data: %v", err)
		}
		state = storage.Seed()
	}

	now := s.now()
	for i := range state.Patients {
		state.Patients[i].Age = entity.AgeAt(state.Patients[i].BirthDate, now)
		state.Patients[i].Contact = entity.SanitizeContact(state.Patients[i].Contact)
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot() *entity.ClinicState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies a command and persists the resulting state. ok is false
// when an update targets a missing id; the caller decides how to surface
// that. The command itself is not validated here.
func (s *Store) Dispatch(ctx context.Context, cmd Command) (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, res, ok := Apply(s.state, cmd, s.now())
	if !ok {
		return res, false
	}
	s.state = next

	if err := s.snapshots.Save(ctx, s.state); err != nil {
		s.log.Warnf("Failed to persist snapshot, keeping in-memory state: %v", err)
	}
	return res, true
}

// AddPatient creates a patient and returns the stored record
func (s *Store) AddPatient(ctx context.Context, cmd AddPatient) *entity.Patient {
	res, _ := s.Dispatch(ctx, cmd)
	return res.Patient
}

// UpdatePatient merges a partial onto an existing patient. The second return
// is false when no patient has the given id.
func (s *Store) UpdatePatient(ctx context.Context, cmd UpdatePatient) (*entity.Patient, bool) {
	res, ok := s.Dispatch(ctx, cmd)
	return res.Patient, ok
}

// AddVisit creates a visit and returns the stored record
func (s *Store) AddVisit(ctx context.Context, cmd AddVisit) *entity.Visit {
	res, _ := s.Dispatch(ctx, cmd)
	return res.Visit
}

// UpdateVisit merges a partial onto an existing visit
func (s *Store) UpdateVisit(ctx context.Context, cmd UpdateVisit) (*entity.Visit, bool) {
	res, ok := s.Dispatch(ctx, cmd)
	return res.Visit, ok
}

// AddPayment creates a payment and returns the stored record
func (s *Store) AddPayment(ctx context.Context, cmd AddPayment) *entity.Payment {
	res, _ := s.Dispatch(ctx, cmd)
	return res.Payment
}

// UpdatePayment merges a partial onto an existing payment
func (s *Store) UpdatePayment(ctx context.Context, cmd UpdatePayment) (*entity.Payment, bool) {
	res, ok := s.Dispatch(ctx, cmd)
	return res.Payment, ok
}
