package store

import (
	"time"

	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"

	"github.com/google/uuid"
)

// Result carries the record a command created or updated. Exactly one field
// is set on success.
type Result struct {
	Patient *entity.Patient
	Visit   *entity.Visit
	Payment *entity.Payment
}

// Apply is the pure transition function: it never mutates its input and
// returns a fresh state. ok is false only for updates targeting a missing id,
// in which case the input state is returned unchanged. No validation happens
// here; logically inconsistent values are accepted as given.
func Apply(state *entity.ClinicState, cmd Command, now time.Time) (*entity.ClinicState, Result, bool) {
	next := state.Clone()

	switch c := cmd.(type) {
	case AddPatient:
		p := applyAddPatient(next, c, now)
		return next, Result{Patient: p}, true
	case UpdatePatient:
		p := applyUpdatePatient(next, c, now)
		if p == nil {
			return state, Result{}, false
		}
		return next, Result{Patient: p}, true
	case AddVisit:
		v := applyAddVisit(next, c, now)
		return next, Result{Visit: v}, true
	case UpdateVisit:
		v := applyUpdateVisit(next, c, now)
		if v == nil {
			return state, Result{}, false
		}
		return next, Result{Visit: v}, true
	case AddPayment:
		p := applyAddPayment(next, c, now)
		return next, Result{Payment: p}, true
	case UpdatePayment:
		p := applyUpdatePayment(next, c, now)
		if p == nil {
			return state, Result{}, false
		}
		return next, Result{Payment: p}, true
	}
	return state, Result{}, false
}

func applyAddPatient(state *entity.ClinicState, c AddPatient, now time.Time) *entity.Patient {
	p := entity.Patient{
		ID:                uuid.New(),
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Gender:            c.Gender,
		BirthDate:         c.BirthDate,
		Age:               entity.AgeAt(c.BirthDate, now),
		Contact:           entity.SanitizeContact(c.Contact),
		ChronicConditions: append([]string{}, c.ChronicConditions...),
		Allergies:         append([]string{}, c.Allergies...),
		Notes:             c.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	state.Patients = append(state.Patients, p)
	return &state.Patients[len(state.Patients)-1]
}

func applyUpdatePatient(state *entity.ClinicState, c UpdatePatient, now time.Time) *entity.Patient {
	p := state.FindPatient(c.ID)
	if p == nil {
		return nil
	}

	if c.FirstName != nil {
		p.FirstName = *c.FirstName
	}
	if c.LastName != nil {
		p.LastName = *c.LastName
	}
	if c.Gender != nil {
		p.Gender = *c.Gender
	}
	if c.BirthDate != nil {
		p.BirthDate = *c.BirthDate
		p.Age = entity.AgeAt(*c.BirthDate, now)
	}
	if c.Contact != nil {
		if c.Contact.Phone != nil {
			p.Contact.Phone = *c.Contact.Phone
		}
		if c.Contact.Email != nil {
			p.Contact.Email = *c.Contact.Email
		}
		if c.Contact.Address != nil {
			p.Contact.Address = *c.Contact.Address
		}
		if c.Contact.EmergencyContactName != nil {
			p.Contact.EmergencyContactName = *c.Contact.EmergencyContactName
		}
		if c.Contact.EmergencyContactPhone != nil {
			p.Contact.EmergencyContactPhone = *c.Contact.EmergencyContactPhone
		}
		p.Contact = entity.SanitizeContact(p.Contact)
	}
	if c.ChronicConditions != nil {
		p.ChronicConditions = append([]string{}, (*c.ChronicConditions)...)
	}
	if c.Allergies != nil {
		p.Allergies = append([]string{}, (*c.Allergies)...)
	}
	if c.Notes != nil {
		p.Notes = *c.Notes
	}
	p.UpdatedAt = now
	return p
}

func applyAddVisit(state *entity.ClinicState, c AddVisit, now time.Time) *entity.Visit {
	v := entity.Visit{
		ID:            uuid.New(),
		PatientID:     c.PatientID,
		VisitDate:     c.VisitDate,
		Reason:        c.Reason,
		Complaints:    append([]string{}, c.Complaints...),
		Diagnoses:     append([]string{}, c.Diagnoses...),
		TreatmentPlan: c.TreatmentPlan,
		Notes:         c.Notes,
		Vitals:        c.Vitals,
		Physician:     c.Physician,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if c.FollowUpDate != nil {
		d := *c.FollowUpDate
		v.FollowUpDate = &d
	}
	state.Visits = append(state.Visits, v)
	return &state.Visits[len(state.Visits)-1]
}

func applyUpdateVisit(state *entity.ClinicState, c UpdateVisit, now time.Time) *entity.Visit {
	v := state.FindVisit(c.ID)
	if v == nil {
		return nil
	}

	if c.VisitDate != nil {
		v.VisitDate = *c.VisitDate
	}
	if c.Reason != nil {
		v.Reason = *c.Reason
	}
	if c.Complaints != nil {
		v.Complaints = append([]string{}, (*c.Complaints)...)
	}
	if c.Diagnoses != nil {
		v.Diagnoses = append([]string{}, (*c.Diagnoses)...)
	}
	if c.TreatmentPlan != nil {
		v.TreatmentPlan = *c.TreatmentPlan
	}
	if c.Notes != nil {
		v.Notes = *c.Notes
	}
	if c.FollowUpDate != nil {
		d := *c.FollowUpDate
		v.FollowUpDate = &d
	}
	if c.Vitals != nil {
		if c.Vitals.BloodPressure != nil {
			v.Vitals.BloodPressure = *c.Vitals.BloodPressure
		}
		if c.Vitals.HeartRate != nil {
			v.Vitals.HeartRate = *c.Vitals.HeartRate
		}
		if c.Vitals.Temperature != nil {
			v.Vitals.Temperature = *c.Vitals.Temperature
		}
		if c.Vitals.OxygenSaturation != nil {
			v.Vitals.OxygenSaturation = *c.Vitals.OxygenSaturation
		}
	}
	if c.Physician != nil {
		v.Physician = *c.Physician
	}
	v.UpdatedAt = now
	return v
}

func applyAddPayment(state *entity.ClinicState, c AddPayment, now time.Time) *entity.Payment {
	p := entity.Payment{
		ID:            uuid.New(),
		PatientID:     c.PatientID,
		AmountDue:     c.AmountDue,
		AmountPaid:    c.AmountPaid,
		Method:        c.Method,
		InvoiceNumber: c.InvoiceNumber,
		Notes:         c.Notes,
		RecordedAt:    now,
		UpdatedAt:     now,
	}
	if c.VisitID != nil {
		id := *c.VisitID
		p.VisitID = &id
	}
	state.Payments = append(state.Payments, p)
	return &state.Payments[len(state.Payments)-1]
}

func applyUpdatePayment(state *entity.ClinicState, c UpdatePayment, now time.Time) *entity.Payment {
	p := state.FindPayment(c.ID)
	if p == nil {
		return nil
	}

	if c.VisitID != nil {
		id := *c.VisitID
		p.VisitID = &id
	}
	if c.AmountDue != nil {
		p.AmountDue = *c.AmountDue
	}
	if c.AmountPaid != nil {
		p.AmountPaid = *c.AmountPaid
	}
	if c.Method != nil {
		p.Method = *c.Method
	}
	if c.InvoiceNumber != nil {
		p.InvoiceNumber = *c.InvoiceNumber
	}
	if c.Notes != nil {
		p.Notes = *c.Notes
	}
	p.UpdatedAt = now
	return p
}
