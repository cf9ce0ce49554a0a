package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type VitalsRequest struct {
	BloodPressure    string `json:"blood_pressure"`
	HeartRate        string `json:"heart_rate"`
	Temperature      string `json:"temperature"`
	OxygenSaturation string `json:"oxygen_saturation"`
}

type CreateVisitRequest struct {
	PatientID     uuid.UUID      `json:"patient_id" validate:"required"`
	VisitDate     string         `json:"visit_date" validate:"required,datetime=2006-01-02"`
	Reason        string         `json:"reason" validate:"required"`
	Complaints    []string       `json:"complaints"`
	Diagnoses     []string       `json:"diagnoses"`
	TreatmentPlan string         `json:"treatment_plan"`
	Notes         string         `json:"notes"`
	FollowUpDate  string         `json:"follow_up_date" validate:"omitempty,datetime=2006-01-02"`
	Vitals        *VitalsRequest `json:"vitals"`
	Physician     string         `json:"physician"`
}

// UpdateVisitRequest deliberately has no patient_id field; the reference is
// immutable after creation. Vitals fields overlay the stored ones one by one.
type UpdateVisitRequest struct {
	VisitDate     *string             `json:"visit_date" validate:"omitempty,datetime=2006-01-02"`
	Reason        *string             `json:"reason" validate:"omitempty,min=1"`
	Complaints    *[]string           `json:"complaints"`
	Diagnoses     *[]string           `json:"diagnoses"`
	TreatmentPlan *string             `json:"treatment_plan"`
	Notes         *string             `json:"notes"`
	FollowUpDate  *string             `json:"follow_up_date" validate:"omitempty,datetime=2006-01-02"`
	Vitals        *VitalsPatchRequest `json:"vitals"`
	Physician     *string             `json:"physician"`
}

type VitalsPatchRequest struct {
	BloodPressure    *string `json:"blood_pressure"`
	HeartRate        *string `json:"heart_rate"`
	Temperature      *string `json:"temperature"`
	OxygenSaturation *string `json:"oxygen_saturation"`
}

// VisitListQuery filters the visit log
type VisitListQuery struct {
	PatientID *uuid.UUID
	Diagnoses []string
	From      *time.Time
	To        *time.Time
}

// Response DTOs

type VitalsResponse struct {
	BloodPressure    string `json:"blood_pressure,omitempty"`
	HeartRate        string `json:"heart_rate,omitempty"`
	Temperature      string `json:"temperature,omitempty"`
	OxygenSaturation string `json:"oxygen_saturation,omitempty"`
}

type VisitResponse struct {
	ID            uuid.UUID      `json:"id"`
	PatientID     uuid.UUID      `json:"patient_id"`
	VisitDate     string         `json:"visit_date"`
	Reason        string         `json:"reason"`
	Complaints    []string       `json:"complaints"`
	Diagnoses     []string       `json:"diagnoses"`
	TreatmentPlan string         `json:"treatment_plan,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	FollowUpDate  string         `json:"follow_up_date,omitempty"`
	Vitals        VitalsResponse `json:"vitals"`
	Physician     string         `json:"physician,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
	Total  int             `json:"total"`
}

// FollowUpResponse is one row of the follow-up widget: the visit joined with
// the patient's name and the urgency classification.
type FollowUpResponse struct {
	VisitID      uuid.UUID `json:"visit_id"`
	PatientID    uuid.UUID `json:"patient_id"`
	PatientName  string    `json:"patient_name"`
	VisitDate    string    `json:"visit_date"`
	FollowUpDate string    `json:"follow_up_date"`
	Days         int       `json:"days"`
	Bucket       string    `json:"bucket"`
	Label        string    `json:"label"`
}

type FollowUpListResponse struct {
	FollowUps []FollowUpResponse `json:"follow_ups"`
	Total     int                `json:"total"`
}
