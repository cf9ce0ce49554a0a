package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"
)

// FollowUpBucket classifies a visit's follow-up date relative to today
type FollowUpBucket string

const (
	FollowUpOverdue  FollowUpBucket = "overdue"
	FollowUpDueToday FollowUpBucket = "due-today"
	FollowUpDueSoon  FollowUpBucket = "due-soon"
	FollowUpNextWeek FollowUpBucket = "next-7-days"
	FollowUpLater    FollowUpBucket = "later"
)

// DaysUntil returns the calendar-day delta from today to date, ignoring
// time-of-day on both sides.
func DaysUntil(date, today time.Time) int {
	return int(dayOf(date).Sub(dayOf(today)).Hours() / 24)
}

// ClassifyFollowUp assigns exactly one urgency bucket: overdue for negative
// day deltas, due today at zero, due soon within 1-3 days, next-7-days within
// 4-7 days, later beyond that.
func ClassifyFollowUp(followUp, today time.Time) (FollowUpBucket, int) {
	days := DaysUntil(followUp, today)
	switch {
	case days < 0:
		return FollowUpOverdue, days
	case days == 0:
		return FollowUpDueToday, days
	case days <= 3:
		return FollowUpDueSoon, days
	case days <= 7:
		return FollowUpNextWeek, days
	default:
		return FollowUpLater, days
	}
}

// FollowUpLabel renders the user-facing label for a classified follow-up
func FollowUpLabel(bucket FollowUpBucket, days int) string {
	switch bucket {
	case FollowUpOverdue:
		if days == -1 {
			return "Overdue by 1 day"
		}
		return fmt.Sprintf("Overdue by %d days", -days)
	case FollowUpDueToday:
		return "Due today"
	case FollowUpDueSoon:
		if days == 1 {
			return "In 1 day"
		}
		return fmt.Sprintf("In %d days", days)
	case FollowUpNextWeek:
		return "Next 7 days"
	default:
		return fmt.Sprintf("In %d days", days)
	}
}

// UpcomingFollowUp joins a visit with its urgency classification
type UpcomingFollowUp struct {
	Visit  entity.Visit
	Days   int
	Bucket FollowUpBucket
}

// UpcomingFollowUps classifies every visit that has a follow-up date, most
// urgent first. Visits without one are excluded entirely, not classified.
func UpcomingFollowUps(visits []entity.Visit, today time.Time) []UpcomingFollowUp {
	out := []UpcomingFollowUp{}
	for _, v := range visits {
		if v.FollowUpDate == nil {
			continue
		}
		bucket, days := ClassifyFollowUp(*v.FollowUpDate, today)
		out = append(out, UpcomingFollowUp{Visit: v, Days: days, Bucket: bucket})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Days < out[j].Days
	})
	return out
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
