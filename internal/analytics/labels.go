package analytics

import (
	"sort"

	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"
)

// LabelCount is one row of a frequency table over free-text label sets
type LabelCount struct {
	Label string
	Count int
}

// CountLabels builds a frequency table over label sets, sorted by count
// descending with label-ascending ties so top-N extraction is deterministic.
func CountLabels(sets ...[]string) []LabelCount {
	counts := make(map[string]int)
	for _, set := range sets {
		for _, label := range set {
			counts[label]++
		}
	}

	out := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// TopLabels keeps the first n rows of a frequency table
func TopLabels(counts []LabelCount, n int) []LabelCount {
	if len(counts) <= n {
		return counts
	}
	return counts[:n]
}

// DiagnosisFrequencies tabulates diagnoses across a visit set
func DiagnosisFrequencies(visits []entity.Visit) []LabelCount {
	sets := make([][]string, len(visits))
	for i := range visits {
		sets[i] = visits[i].Diagnoses
	}
	return CountLabels(sets...)
}

// ComplaintFrequencies tabulates complaints across a visit set
func ComplaintFrequencies(visits []entity.Visit) []LabelCount {
	sets := make([][]string, len(visits))
	for i := range visits {
		sets[i] = visits[i].Complaints
	}
	return CountLabels(sets...)
}

// ChronicConditionFrequencies tabulates chronic conditions across patients
func ChronicConditionFrequencies(patients []entity.Patient) []LabelCount {
	sets := make([][]string, len(patients))
	for i := range patients {
		sets[i] = patients[i].ChronicConditions
	}
	return CountLabels(sets...)
}
