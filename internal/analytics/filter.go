// Package analytics holds the pure derived-view computations the dashboard
// pages apply to the raw collections. Everything here is stateless and
// recomputed per call; at tens to low hundreds of records no caching is
// warranted.
package analytics

import (
	"strings"
	"time"

	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientCriteria are the filter facets of the patient registry page.
// A patient must match every provided facet.
type PatientCriteria struct {
	Search            string
	Genders           []string
	AgeMin            *int
	AgeMax            *int
	ChronicConditions []string
	Diagnoses         []string
}

// FilterPatients returns the patients matching all selected facets.
// Age bounds are inclusive; min is clamped to 0 and max to at least min.
// Chronic conditions are a superset match: every selected condition must be
// present. Diagnoses match through any of the patient's visits.
func FilterPatients(patients []entity.Patient, visits []entity.Visit, c PatientCriteria) []entity.Patient {
	ageMin, ageMax := clampAgeRange(c.AgeMin, c.AgeMax)
	search := strings.ToLower(strings.TrimSpace(c.Search))

	var diagnosed map[uuid.UUID]bool
	if len(c.Diagnoses) > 0 {
		diagnosed = patientsWithDiagnoses(visits, c.Diagnoses)
	}

	out := []entity.Patient{}
	for _, p := range patients {
		if search != "" && !matchesSearch(&p, search) {
			continue
		}
		if len(c.Genders) > 0 && !containsString(c.Genders, p.Gender) {
			continue
		}
		if ageMin != nil && p.Age < *ageMin {
			continue
		}
		if ageMax != nil && p.Age > *ageMax {
			continue
		}
		if !hasAllConditions(p.ChronicConditions, c.ChronicConditions) {
			continue
		}
		if diagnosed != nil && !diagnosed[p.ID] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// VisitCriteria filters the visit log
type VisitCriteria struct {
	PatientID *uuid.UUID
	Diagnoses []string
	From      *time.Time
	To        *time.Time
}

// FilterVisits returns the visits matching all provided criteria. The date
// range is inclusive and compared on calendar days.
func FilterVisits(visits []entity.Visit, c VisitCriteria) []entity.Visit {
	out := []entity.Visit{}
	for _, v := range visits {
		if c.PatientID != nil && v.PatientID != *c.PatientID {
			continue
		}
		if len(c.Diagnoses) > 0 && !hasAnyDiagnosis(&v, c.Diagnoses) {
			continue
		}
		if c.From != nil && dayOf(v.VisitDate).Before(dayOf(*c.From)) {
			continue
		}
		if c.To != nil && dayOf(v.VisitDate).After(dayOf(*c.To)) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// VisitsForPatients narrows visits to the patient subset currently in view,
// further filtered by the selected diagnosis set when provided.
func VisitsForPatients(visits []entity.Visit, patients []entity.Patient, diagnoses []string) []entity.Visit {
	ids := patientIDSet(patients)
	out := []entity.Visit{}
	for _, v := range visits {
		if !ids[v.PatientID] {
			continue
		}
		if len(diagnoses) > 0 && !hasAnyDiagnosis(&v, diagnoses) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// PaymentsForPatients narrows payments to the patient subset currently in view
func PaymentsForPatients(payments []entity.Payment, patients []entity.Patient) []entity.Payment {
	ids := patientIDSet(patients)
	out := []entity.Payment{}
	for _, p := range payments {
		if ids[p.PatientID] {
			out = append(out, p)
		}
	}
	return out
}

func clampAgeRange(min, max *int) (*int, *int) {
	if min != nil && *min < 0 {
		zero := 0
		min = &zero
	}
	if min != nil && max != nil && *max < *min {
		max = min
	}
	return min, max
}

func matchesSearch(p *entity.Patient, search string) bool {
	return strings.Contains(strings.ToLower(p.FullName()), search) ||
		strings.Contains(strings.ToLower(p.Contact.Phone), search) ||
		strings.Contains(strings.ToLower(p.ID.String()), search)
}

func hasAllConditions(have, want []string) bool {
	for _, w := range want {
		if !containsString(have, w) {
			return false
		}
	}
	return true
}

func hasAnyDiagnosis(v *entity.Visit, labels []string) bool {
	for _, l := range labels {
		if v.HasDiagnosis(l) {
			return true
		}
	}
	return false
}

func patientsWithDiagnoses(visits []entity.Visit, labels []string) map[uuid.UUID]bool {
	out := make(map[uuid.UUID]bool)
	for _, v := range visits {
		if hasAnyDiagnosis(&v, labels) {
			out[v.PatientID] = true
		}
	}
	return out
}

func patientIDSet(patients []entity.Patient) map[uuid.UUID]bool {
	ids := make(map[uuid.UUID]bool, len(patients))
	for _, p := range patients {
		ids[p.ID] = true
	}
	return ids
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
