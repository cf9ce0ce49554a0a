package store

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"
	"github.com/ahmadeq/test-clinic-demo/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// failingStore simulates a persistence layer that is down
type failingStore struct{}

func (failingStore) Load(ctx context.Context) (*entity.ClinicState, error) {
	return nil, errors.New("storage unavailable")
}

func (failingStore) Save(ctx context.Context, state *entity.ClinicState) error {
	return errors.New("storage unavailable")
}

func TestLoadFallsBackToSeedWhenEmpty(t *testing.T) {
	s := New(storage.NewMemoryStore(), testLogger(), WithClock(fixedClock(refDate)))
	s.Load(context.Background())

	state := s.Snapshot()
	assert.Len(t, state.Patients, 3)
	assert.Len(t, state.Visits, 3)
	assert.Len(t, state.Payments, 3)
}

func TestLoadFallsBackToSeedOnStorageFailure(t *testing.T) {
	s := New(failingStore{}, testLogger(), WithClock(fixedClock(refDate)))
	s.Load(context.Background())

	assert.Len(t, s.Snapshot().Patients, 3)
}

func TestLoadRecomputesAges(t *testing.T) {
	snapshots := storage.NewMemoryStore()
	stale := storage.Seed()
	stale.Patients[0].Age = 99 // stored age is never authoritative
	require.NoError(t, snapshots.Save(context.Background(), stale))

	s := New(snapshots, testLogger(), WithClock(fixedClock(refDate)))
	s.Load(context.Background())

	// Amani Youssef, born 1988-02-14, is 37 on 2025-11-01
	assert.Equal(t, 37, s.Snapshot().Patients[0].Age)
}

func TestDispatchPersistsSnapshot(t *testing.T) {
	snapshots := storage.NewMemoryStore()
	s := New(snapshots, testLogger(), WithClock(fixedClock(refDate)))
	s.Load(context.Background())

	patient := s.AddPatient(context.Background(), AddPatient{
		FirstName: "Huda",
		LastName:  "Karim",
		Gender:    entity.GenderFemale,
		BirthDate: time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC),
		Contact:   entity.Contact{Phone: "+962790000009"},
	})
	require.NotNil(t, patient)

	persisted, err := snapshots.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, persisted.Patients, 4)
	assert.Equal(t, patient.ID, persisted.Patients[3].ID)
}

func TestDispatchSwallowsPersistenceFailure(t *testing.T) {
	s := New(failingStore{}, testLogger(), WithClock(fixedClock(refDate)))
	s.Load(context.Background())

	patient := s.AddPatient(context.Background(), AddPatient{
		FirstName: "Huda",
		LastName:  "Karim",
		Gender:    entity.GenderFemale,
		BirthDate: time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC),
		Contact:   entity.Contact{Phone: "+962790000009"},
	})

	// In-memory state stays authoritative for the session
	require.NotNil(t, patient)
	assert.Len(t, s.Snapshot().Patients, 4)
}

func TestRoundTripThroughFileStore(t *testing.T) {
	path := t.TempDir() + "/clinic-state.json"
	clock := fixedClock(refDate)

	first := New(storage.NewFileStore(path), testLogger(), WithClock(clock))
	first.Load(context.Background())
	visitID := first.Snapshot().Visits[0].ID
	payment := first.AddPayment(context.Background(), AddPayment{
		PatientID:  first.Snapshot().Patients[0].ID,
		VisitID:    &visitID,
		AmountDue:  decimal.NewFromInt(1200),
		AmountPaid: decimal.NewFromInt(800),
		Method:     entity.PaymentMethodTransfer,
	})
	require.NotNil(t, payment)
	before := first.Snapshot()

	second := New(storage.NewFileStore(path), testLogger(), WithClock(clock))
	second.Load(context.Background())
	after := second.Snapshot()

	require.Equal(t, len(before.Patients), len(after.Patients))
	require.Equal(t, len(before.Visits), len(after.Visits))
	require.Equal(t, len(before.Payments), len(after.Payments))

	for i := range before.Patients {
		// Ages recomputed on load against the same clock must match
		assert.Equal(t, before.Patients[i].Age, after.Patients[i].Age)
		assert.Equal(t, before.Patients[i].ID, after.Patients[i].ID)
		assert.Equal(t, before.Patients[i].Contact, after.Patients[i].Contact)
	}

	reloaded := after.FindPayment(payment.ID)
	require.NotNil(t, reloaded)
	assert.True(t, reloaded.AmountDue.Equal(payment.AmountDue))
	assert.True(t, reloaded.Balance().Equal(decimal.NewFromInt(400)))
	assert.Equal(t, entity.PaymentStatusPartial, reloaded.Status())
	require.NotNil(t, reloaded.VisitID)
	assert.Equal(t, visitID, *reloaded.VisitID)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New(storage.NewMemoryStore(), testLogger(), WithClock(fixedClock(refDate)))
	s.Load(context.Background())

	snap := s.Snapshot()
	snap.Patients[0].FirstName = "Changed"
	snap.Patients[0].ChronicConditions[0] = "Changed"

	fresh := s.Snapshot()
	assert.Equal(t, "Amani", fresh.Patients[0].FirstName)
	assert.Equal(t, "Hypertension", fresh.Patients[0].ChronicConditions[0])
}
