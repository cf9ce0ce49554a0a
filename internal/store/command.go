package store

import (
	"time"

	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Command is a mutation request processed by Apply. The variants form a
// closed set; nothing else can transition the clinic state.
type Command interface {
	isCommand()
}

// AddPatient creates a new patient record. The store assigns id, timestamps
// and the derived age, and sanitizes the contact block.
type AddPatient struct {
	FirstName         string
	LastName          string
	Gender            string
	BirthDate         time.Time
	Contact           entity.Contact
	ChronicConditions []string
	Allergies         []string
	Notes             string
}

// UpdatePatient merges the non-nil fields onto an existing patient.
// Array fields replace wholesale when provided; age is recomputed only when
// BirthDate is part of the partial.
type UpdatePatient struct {
	ID                uuid.UUID
	FirstName         *string
	LastName          *string
	Gender            *string
	BirthDate         *time.Time
	Contact           *ContactPatch
	ChronicConditions *[]string
	Allergies         *[]string
	Notes             *string
}

// ContactPatch merges contact fields one by one; nil keeps the existing value
type ContactPatch struct {
	Phone                 *string
	Email                 *string
	Address               *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

// AddVisit creates a new visit for a patient
type AddVisit struct {
	PatientID     uuid.UUID
	VisitDate     time.Time
	Reason        string
	Complaints    []string
	Diagnoses     []string
	TreatmentPlan string
	Notes         string
	FollowUpDate  *time.Time
	Vitals        entity.Vitals
	Physician     string
}

// UpdateVisit merges onto an existing visit. PatientID is immutable and
// deliberately absent. Vitals merge shallowly field by field; complaints and
// diagnoses replace wholesale when provided.
type UpdateVisit struct {
	ID            uuid.UUID
	VisitDate     *time.Time
	Reason        *string
	Complaints    *[]string
	Diagnoses     *[]string
	TreatmentPlan *string
	Notes         *string
	FollowUpDate  *time.Time
	Vitals        *VitalsPatch
	Physician     *string
}

// VitalsPatch overlays individual vitals fields; nil keeps the existing value
type VitalsPatch struct {
	BloodPressure    *string
	HeartRate        *string
	Temperature      *string
	OxygenSaturation *string
}

// AddPayment creates a new billing record; RecordedAt is set to now
type AddPayment struct {
	PatientID     uuid.UUID
	VisitID       *uuid.UUID
	AmountDue     decimal.Decimal
	AmountPaid    decimal.Decimal
	Method        entity.PaymentMethod
	InvoiceNumber string
	Notes         string
}

// UpdatePayment merges scalar fields onto an existing payment.
// PatientID and RecordedAt are immutable and deliberately absent.
type UpdatePayment struct {
	ID            uuid.UUID
	VisitID       *uuid.UUID
	AmountDue     *decimal.Decimal
	AmountPaid    *decimal.Decimal
	Method        *entity.PaymentMethod
	InvoiceNumber *string
	Notes         *string
}

func (AddPatient) isCommand()    {}
func (UpdatePatient) isCommand() {}
func (AddVisit) isCommand()      {}
func (UpdateVisit) isCommand()   {}
func (AddPayment) isCommand()    {}
func (UpdatePayment) isCommand() {}
