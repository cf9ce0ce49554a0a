package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// ContactUnset is the placeholder stored for optional contact fields left blank.
const ContactUnset = "unset"

// Contact holds the contact block of a patient. Phone is required; the
// remaining fields carry ContactUnset when not provided.
type Contact struct {
	Phone                 string `json:"phone"`
	Email                 string `json:"email"`
	Address               string `json:"address"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
}

// Patient represents a registered patient record
type Patient struct {
	ID                uuid.UUID `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Gender            string    `json:"gender"`
	BirthDate         time.Time `json:"birth_date"`
	Age               int       `json:"age"`
	Contact           Contact   `json:"contact"`
	ChronicConditions []string  `json:"chronic_conditions"`
	Allergies         []string  `json:"allergies"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// FullName returns the patient's display name
func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Clone returns a deep copy of the patient
func (p Patient) Clone() Patient {
	c := p
	c.ChronicConditions = append([]string(nil), p.ChronicConditions...)
	c.Allergies = append([]string(nil), p.Allergies...)
	return c
}

// AgeAt computes full years elapsed between birth and ref. Age is never
// stored authoritatively; callers recompute it at creation, update and load.
func AgeAt(birth, ref time.Time) int {
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

// SanitizeContact replaces blank optional fields with ContactUnset.
// Phone stays as given; its presence is enforced at the form boundary.
func SanitizeContact(c Contact) Contact {
	if strings.TrimSpace(c.Email) == "" {
		c.Email = ContactUnset
	}
	if strings.TrimSpace(c.Address) == "" {
		c.Address = ContactUnset
	}
	if strings.TrimSpace(c.EmergencyContactName) == "" {
		c.EmergencyContactName = ContactUnset
	}
	if strings.TrimSpace(c.EmergencyContactPhone) == "" {
		c.EmergencyContactPhone = ContactUnset
	}
	return c
}
