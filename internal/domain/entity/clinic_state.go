package entity

import "github.com/google/uuid"

// ClinicState is the aggregate root: three parallel collections with
// insertion order preserved. It is the exact shape of the persisted snapshot.
type ClinicState struct {
	Patients []Patient `json:"patients"`
	Visits   []Visit   `json:"visits"`
	Payments []Payment `json:"payments"`
}

// NewClinicState returns an empty state with allocated collections
func NewClinicState() *ClinicState {
	return &ClinicState{
		Patients: []Patient{},
		Visits:   []Visit{},
		Payments: []Payment{},
	}
}

// Clone returns a deep copy of the full state
func (s *ClinicState) Clone() *ClinicState {
	c := &ClinicState{
		Patients: make([]Patient, len(s.Patients)),
		Visits:   make([]Visit, len(s.Visits)),
		Payments: make([]Payment, len(s.Payments)),
	}
	for i, p := range s.Patients {
		c.Patients[i] = p.Clone()
	}
	for i, v := range s.Visits {
		c.Visits[i] = v.Clone()
	}
	for i, p := range s.Payments {
		c.Payments[i] = p.Clone()
	}
	return c
}

// FindPatient returns the patient with the given id, or nil
func (s *ClinicState) FindPatient(id uuid.UUID) *Patient {
	for i := range s.Patients {
		if s.Patients[i].ID == id {
			return &s.Patients[i]
		}
	}
	return nil
}

// FindVisit returns the visit with the given id, or nil
func (s *ClinicState) FindVisit(id uuid.UUID) *Visit {
	for i := range s.Visits {
		if s.Visits[i].ID == id {
			return &s.Visits[i]
		}
	}
	return nil
}

// FindPayment returns the payment with the given id, or nil
func (s *ClinicState) FindPayment(id uuid.UUID) *Payment {
	for i := range s.Payments {
		if s.Payments[i].ID == id {
			return &s.Payments[i]
		}
	}
	return nil
}
