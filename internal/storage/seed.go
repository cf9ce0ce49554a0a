package storage

import (
	"time"

	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fixed ids so the seed dataset is stable across runs
var (
	seedPatient1 = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c1")
	seedPatient2 = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c2")
	seedPatient3 = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c3")

	seedVisit1 = uuid.MustParse("7ba7b810-9dad-11d1-80b4-00c04fd430d1")
	seedVisit2 = uuid.MustParse("7ba7b810-9dad-11d1-80b4-00c04fd430d2")
	seedVisit3 = uuid.MustParse("7ba7b810-9dad-11d1-80b4-00c04fd430d3")

	seedPayment1 = uuid.MustParse("8ba7b810-9dad-11d1-80b4-00c04fd430e1")
	seedPayment2 = uuid.MustParse("8ba7b810-9dad-11d1-80b4-00c04fd430e2")
	seedPayment3 = uuid.MustParse("8ba7b810-9dad-11d1-80b4-00c04fd430e3")
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

// Seed returns the fixed initial dataset used whenever no valid snapshot is
// found. It is the effective empty state of a first run. Patient ages are
// placeholders; the store recomputes them on load.
func Seed() *entity.ClinicState {
	seededAt := date(2025, time.September, 1)

	return &entity.ClinicState{
		Patients: []entity.Patient{
			{
				ID:        seedPatient1,
				FirstName: "Amani",
				LastName:  "Youssef",
				Gender:    entity.GenderFemale,
				BirthDate: date(1988, time.February, 14),
				Contact: entity.Contact{
					Phone:                 "+962790000001",
					Email:                 "amani.youssef@example.com",
					Address:               "Amman, Jabal Al Weibdeh",
					EmergencyContactName:  "Rami Youssef",
					EmergencyContactPhone: "+962790000011",
				},
				ChronicConditions: []string{"Hypertension"},
				Allergies:         []string{"Penicillin"},
				Notes:             "Prefers morning appointments.",
				CreatedAt:         seededAt,
				UpdatedAt:         seededAt,
			},
			{
				ID:        seedPatient2,
				FirstName: "Omar",
				LastName:  "Haddad",
				Gender:    entity.GenderMale,
				BirthDate: date(1972, time.July, 3),
				Contact: entity.Contact{
					Phone: "+962790000002",
				},
				ChronicConditions: []string{"Type 2 Diabetes", "Hypertension"},
				Allergies:         []string{},
				CreatedAt:         seededAt,
				UpdatedAt:         seededAt,
			},
			{
				ID:        seedPatient3,
				FirstName: "Layla",
				LastName:  "Nasser",
				Gender:    entity.GenderFemale,
				BirthDate: date(2001, time.November, 22),
				Contact: entity.Contact{
					Phone: "+962790000003",
					Email: "layla.nasser@example.com",
				},
				ChronicConditions: []string{},
				Allergies:         []string{"Aspirin", "Dust"},
				CreatedAt:         seededAt,
				UpdatedAt:         seededAt,
			},
		},
		Visits: []entity.Visit{
			{
				ID:         seedVisit1,
				PatientID:  seedPatient1,
				VisitDate:  date(2025, time.September, 10),
				Reason:     "Routine blood pressure check",
				Complaints: []string{"Headache"},
				Diagnoses:  []string{"Hypertension"},
				Vitals: entity.Vitals{
					BloodPressure: "145/92",
					HeartRate:     "78",
				},
				FollowUpDate: datePtr(2025, time.October, 10),
				Physician:    "Dr. Ahmad Qasem",
				CreatedAt:    seededAt,
				UpdatedAt:    seededAt,
			},
			{
				ID:            seedVisit2,
				PatientID:     seedPatient2,
				VisitDate:     date(2025, time.September, 15),
				Reason:        "Quarterly diabetes review",
				Complaints:    []string{"Fatigue", "Blurred vision"},
				Diagnoses:     []string{"Type 2 Diabetes"},
				TreatmentPlan: "Adjust metformin dosage, repeat HbA1c in 3 months.",
				Vitals: entity.Vitals{
					BloodPressure: "138/88",
					Temperature:   "36.8",
				},
				FollowUpDate: datePtr(2025, time.December, 15),
				Physician:    "Dr. Ahmad Qasem",
				CreatedAt:    seededAt,
				UpdatedAt:    seededAt,
			},
			{
				ID:         seedVisit3,
				PatientID:  seedPatient3,
				VisitDate:  date(2025, time.September, 20),
				Reason:     "Seasonal allergy flare-up",
				Complaints: []string{"Sneezing", "Itchy eyes"},
				Diagnoses:  []string{"Allergic rhinitis"},
				Vitals:     entity.Vitals{},
				CreatedAt:  seededAt,
				UpdatedAt:  seededAt,
			},
		},
		Payments: []entity.Payment{
			{
				ID:            seedPayment1,
				PatientID:     seedPatient1,
				VisitID:       &seedVisit1,
				AmountDue:     decimal.NewFromInt(35),
				AmountPaid:    decimal.NewFromInt(35),
				Method:        entity.PaymentMethodCash,
				InvoiceNumber: "INV-2025-0001",
				RecordedAt:    date(2025, time.September, 10),
				UpdatedAt:     date(2025, time.September, 10),
			},
			{
				ID:            seedPayment2,
				PatientID:     seedPatient2,
				VisitID:       &seedVisit2,
				AmountDue:     decimal.NewFromInt(120),
				AmountPaid:    decimal.NewFromInt(50),
				Method:        entity.PaymentMethodCard,
				InvoiceNumber: "INV-2025-0002",
				Notes:         "Remainder on next visit.",
				RecordedAt:    date(2025, time.September, 15),
				UpdatedAt:     date(2025, time.September, 15),
			},
			{
				ID:         seedPayment3,
				PatientID:  seedPatient3,
				VisitID:    &seedVisit3,
				AmountDue:  decimal.NewFromInt(25),
				AmountPaid: decimal.NewFromInt(0),
				Method:     entity.PaymentMethodInsurance,
				RecordedAt: date(2025, time.September, 20),
				UpdatedAt:  date(2025, time.September, 20),
			},
		},
	}
}
