package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs
//
// All validation lives here and in the usecases; the state store accepts
// whatever it is given. Dates travel as "2006-01-02" strings.

type CreatePatientRequest struct {
	FirstName             string   `json:"first_name" validate:"required"`
	LastName              string   `json:"last_name" validate:"required"`
	Gender                string   `json:"gender" validate:"required,oneof=male female"`
	BirthDate             string   `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Phone                 string   `json:"phone" validate:"required"`
	Email                 string   `json:"email" validate:"omitempty,email"`
	Address               string   `json:"address"`
	EmergencyContactName  string   `json:"emergency_contact_name"`
	EmergencyContactPhone string   `json:"emergency_contact_phone"`
	ChronicConditions     []string `json:"chronic_conditions"`
	Allergies             []string `json:"allergies"`
	Notes                 string   `json:"notes"`
}

// UpdatePatientRequest carries a partial: nil fields keep the stored value,
// provided arrays replace the stored ones wholesale.
type UpdatePatientRequest struct {
	FirstName             *string   `json:"first_name" validate:"omitempty,min=1"`
	LastName              *string   `json:"last_name" validate:"omitempty,min=1"`
	Gender                *string   `json:"gender" validate:"omitempty,oneof=male female"`
	BirthDate             *string   `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Phone                 *string   `json:"phone" validate:"omitempty,min=1"`
	Email                 *string   `json:"email"`
	Address               *string   `json:"address"`
	EmergencyContactName  *string   `json:"emergency_contact_name"`
	EmergencyContactPhone *string   `json:"emergency_contact_phone"`
	ChronicConditions     *[]string `json:"chronic_conditions"`
	Allergies             *[]string `json:"allergies"`
	Notes                 *string   `json:"notes"`
}

// PatientListQuery mirrors the registry page's filter facets
type PatientListQuery struct {
	Search            string
	Genders           []string
	AgeMin            *int
	AgeMax            *int
	ChronicConditions []string
	Diagnoses         []string
}

// Response DTOs

type ContactResponse struct {
	Phone                 string `json:"phone"`
	Email                 string `json:"email"`
	Address               string `json:"address"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
}

type PatientResponse struct {
	ID                uuid.UUID       `json:"id"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	FullName          string          `json:"full_name"`
	Gender            string          `json:"gender"`
	BirthDate         string          `json:"birth_date"`
	Age               int             `json:"age"`
	Contact           ContactResponse `json:"contact"`
	ChronicConditions []string        `json:"chronic_conditions"`
	Allergies         []string        `json:"allergies"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
