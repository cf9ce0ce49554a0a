package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vitals holds optional free-text measurements taken during a visit.
// Values are recorded as entered, not validated as numbers.
type Vitals struct {
	BloodPressure    string `json:"blood_pressure,omitempty"`
	HeartRate        string `json:"heart_rate,omitempty"`
	Temperature      string `json:"temperature,omitempty"`
	OxygenSaturation string `json:"oxygen_saturation,omitempty"`
}

// Visit represents a clinical encounter tied to exactly one patient.
// PatientID is immutable after creation.
type Visit struct {
	ID            uuid.UUID  `json:"id"`
	PatientID     uuid.UUID  `json:"patient_id"`
	VisitDate     time.Time  `json:"visit_date"`
	Reason        string     `json:"reason"`
	Complaints    []string   `json:"complaints"`
	Diagnoses     []string   `json:"diagnoses"`
	TreatmentPlan string     `json:"treatment_plan,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	FollowUpDate  *time.Time `json:"follow_up_date,omitempty"`
	Vitals        Vitals     `json:"vitals"`
	Physician     string     `json:"physician,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// HasDiagnosis checks whether the visit carries the given diagnosis label
func (v *Visit) HasDiagnosis(label string) bool {
	for _, d := range v.Diagnoses {
		if d == label {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the visit
func (v Visit) Clone() Visit {
	c := v
	c.Complaints = append([]string(nil), v.Complaints...)
	c.Diagnoses = append([]string(nil), v.Diagnoses...)
	if v.FollowUpDate != nil {
		d := *v.FollowUpDate
		c.FollowUpDate = &d
	}
	return c
}
