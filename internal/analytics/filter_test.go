package analytics

import (
	"testing"
	"time"

	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func testPatients() []entity.Patient {
	return []entity.Patient{
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			FirstName: "Amani", LastName: "Youssef",
			Gender: entity.GenderFemale, Age: 37,
			Contact:           entity.Contact{Phone: "+962790000001"},
			ChronicConditions: []string{"Hypertension", "Type 2 Diabetes"},
		},
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"),
			FirstName: "Omar", LastName: "Haddad",
			Gender: entity.GenderMale, Age: 53,
			Contact:           entity.Contact{Phone: "+962790000002"},
			ChronicConditions: []string{"Hypertension"},
		},
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"),
			FirstName: "Layla", LastName: "Nasser",
			Gender: entity.GenderFemale, Age: 23,
			Contact: entity.Contact{Phone: "+962790000003"},
		},
	}
}

func TestFilterPatientsBySearch(t *testing.T) {
	got := FilterPatients(testPatients(), nil, PatientCriteria{Search: "haddad"})
	require.Len(t, got, 1)
	assert.Equal(t, "Omar", got[0].FirstName)

	got = FilterPatients(testPatients(), nil, PatientCriteria{Search: "+96279000000"})
	assert.Len(t, got, 3, "phone prefix matches everyone")
}

func TestFilterPatientsByGender(t *testing.T) {
	got := FilterPatients(testPatients(), nil, PatientCriteria{Genders: []string{entity.GenderFemale}})
	assert.Len(t, got, 2)
}

func TestFilterPatientsByAgeRange(t *testing.T) {
	got := FilterPatients(testPatients(), nil, PatientCriteria{AgeMin: intPtr(30), AgeMax: intPtr(60)})
	require.Len(t, got, 2)
	assert.Equal(t, "Amani", got[0].FirstName)
	assert.Equal(t, "Omar", got[1].FirstName)

	// Inclusive bounds
	got = FilterPatients(testPatients(), nil, PatientCriteria{AgeMin: intPtr(23), AgeMax: intPtr(23)})
	require.Len(t, got, 1)
	assert.Equal(t, "Layla", got[0].FirstName)
}

func TestFilterPatientsClampsAgeRange(t *testing.T) {
	// Negative min clamps to 0; max below min clamps to min
	got := FilterPatients(testPatients(), nil, PatientCriteria{AgeMin: intPtr(-5)})
	assert.Len(t, got, 3)

	got = FilterPatients(testPatients(), nil, PatientCriteria{AgeMin: intPtr(50), AgeMax: intPtr(10)})
	require.Len(t, got, 1)
	assert.Equal(t, "Omar", got[0].FirstName)
}

func TestFilterPatientsRequiresAllChronicConditions(t *testing.T) {
	got := FilterPatients(testPatients(), nil, PatientCriteria{
		ChronicConditions: []string{"Hypertension", "Type 2 Diabetes"},
	})
	require.Len(t, got, 1, "superset match, not any-of")
	assert.Equal(t, "Amani", got[0].FirstName)
}

func TestFilterPatientsByDiagnosisViaVisits(t *testing.T) {
	patients := testPatients()
	visits := []entity.Visit{
		{ID: uuid.New(), PatientID: patients[1].ID, Diagnoses: []string{"Influenza"}},
		{ID: uuid.New(), PatientID: patients[2].ID, Diagnoses: []string{"Allergic rhinitis"}},
	}

	got := FilterPatients(patients, visits, PatientCriteria{Diagnoses: []string{"Influenza"}})
	require.Len(t, got, 1)
	assert.Equal(t, "Omar", got[0].FirstName)
}

func TestVisitAndPaymentJoins(t *testing.T) {
	patients := testPatients()
	inView := patients[:2]
	visits := []entity.Visit{
		{ID: uuid.New(), PatientID: patients[0].ID, Diagnoses: []string{"Hypertension"}},
		{ID: uuid.New(), PatientID: patients[2].ID, Diagnoses: []string{"Allergic rhinitis"}},
	}
	payments := []entity.Payment{
		{ID: uuid.New(), PatientID: patients[0].ID},
		{ID: uuid.New(), PatientID: patients[2].ID},
	}

	gotVisits := VisitsForPatients(visits, inView, nil)
	require.Len(t, gotVisits, 1)
	assert.Equal(t, patients[0].ID, gotVisits[0].PatientID)

	gotVisits = VisitsForPatients(visits, inView, []string{"Migraine"})
	assert.Empty(t, gotVisits)

	gotPayments := PaymentsForPatients(payments, inView)
	require.Len(t, gotPayments, 1)
	assert.Equal(t, patients[0].ID, gotPayments[0].PatientID)
}

func TestFilterVisitsByDateRange(t *testing.T) {
	oct := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)
	nov := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	visits := []entity.Visit{
		{ID: uuid.New(), VisitDate: oct},
		{ID: uuid.New(), VisitDate: nov},
	}

	from := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	got := FilterVisits(visits, VisitCriteria{From: &from})
	require.Len(t, got, 1)
	assert.Equal(t, nov, got[0].VisitDate)

	// Inclusive on the boundary day
	to := oct
	got = FilterVisits(visits, VisitCriteria{To: &to})
	require.Len(t, got, 1)
	assert.Equal(t, oct, got[0].VisitDate)
}
