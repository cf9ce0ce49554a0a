package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		ref   time.Time
		want  int
	}{
		{"birthday already passed this year", time.Date(1988, 2, 14, 0, 0, 0, 0, time.UTC), time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), 37},
		{"birthday later this year", time.Date(1988, 12, 14, 0, 0, 0, 0, time.UTC), time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), 36},
		{"birthday today", time.Date(1990, 11, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), 35},
		{"birthday tomorrow", time.Date(1990, 11, 2, 0, 0, 0, 0, time.UTC), time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), 34},
		{"newborn", time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), 0},
		{"birth date in the future clamps to zero", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeAt(tt.birth, tt.ref))
		})
	}
}

func TestSanitizeContact(t *testing.T) {
	got := SanitizeContact(Contact{Phone: "+962790000001"})

	assert.Equal(t, "+962790000001", got.Phone)
	assert.Equal(t, ContactUnset, got.Email)
	assert.Equal(t, ContactUnset, got.Address)
	assert.Equal(t, ContactUnset, got.EmergencyContactName)
	assert.Equal(t, ContactUnset, got.EmergencyContactPhone)
}

func TestSanitizeContactKeepsProvidedFields(t *testing.T) {
	got := SanitizeContact(Contact{
		Phone:   "+962790000001",
		Email:   "amani@example.com",
		Address: "   ",
	})

	assert.Equal(t, "amani@example.com", got.Email)
	assert.Equal(t, ContactUnset, got.Address, "whitespace-only counts as blank")
}

func TestPatientFullName(t *testing.T) {
	p := Patient{FirstName: "Amani", LastName: "Youssef"}
	assert.Equal(t, "Amani Youssef", p.FullName())

	single := Patient{FirstName: "Amani"}
	assert.Equal(t, "Amani", single.FullName())
}
