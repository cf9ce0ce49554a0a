package analytics

import (
	"testing"
	"time"

	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

func TestClassifyFollowUp(t *testing.T) {
	tests := []struct {
		name       string
		followUp   time.Time
		wantBucket FollowUpBucket
		wantDays   int
	}{
		{"five days late", today.AddDate(0, 0, -5), FollowUpOverdue, -5},
		{"yesterday", today.AddDate(0, 0, -1), FollowUpOverdue, -1},
		{"today", today, FollowUpDueToday, 0},
		{"tomorrow", today.AddDate(0, 0, 1), FollowUpDueSoon, 1},
		{"in three days", today.AddDate(0, 0, 3), FollowUpDueSoon, 3},
		{"in four days", today.AddDate(0, 0, 4), FollowUpNextWeek, 4},
		{"in seven days", today.AddDate(0, 0, 7), FollowUpNextWeek, 7},
		{"in eight days", today.AddDate(0, 0, 8), FollowUpLater, 8},
		// Pinned boundary: 2025-11-10 seen from 2025-11-01 is nine days out,
		// outside the next-7-days window.
		{"in nine days", time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), FollowUpLater, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, days := ClassifyFollowUp(tt.followUp, today)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestClassifyFollowUpIgnoresTimeOfDay(t *testing.T) {
	lateTonight := time.Date(2025, 11, 1, 23, 55, 0, 0, time.UTC)
	earlyTarget := time.Date(2025, 11, 10, 0, 5, 0, 0, time.UTC)

	bucket, days := ClassifyFollowUp(earlyTarget, lateTonight)
	assert.Equal(t, 9, days)
	assert.Equal(t, FollowUpLater, bucket)
}

func TestFollowUpLabel(t *testing.T) {
	assert.Equal(t, "In 9 days", FollowUpLabel(FollowUpLater, 9))
	assert.Equal(t, "Next 7 days", FollowUpLabel(FollowUpNextWeek, 5))
	assert.Equal(t, "Due today", FollowUpLabel(FollowUpDueToday, 0))
	assert.Equal(t, "In 1 day", FollowUpLabel(FollowUpDueSoon, 1))
	assert.Equal(t, "Overdue by 1 day", FollowUpLabel(FollowUpOverdue, -1))
	assert.Equal(t, "Overdue by 4 days", FollowUpLabel(FollowUpOverdue, -4))
}

func TestUpcomingFollowUpsExcludesVisitsWithoutDate(t *testing.T) {
	soon := today.AddDate(0, 0, 2)
	overdue := today.AddDate(0, 0, -3)
	visits := []entity.Visit{
		{Reason: "No follow-up scheduled"},
		{Reason: "Soon", FollowUpDate: &soon},
		{Reason: "Overdue", FollowUpDate: &overdue},
	}

	got := UpcomingFollowUps(visits, today)
	require.Len(t, got, 2)
	assert.Equal(t, "Overdue", got[0].Visit.Reason, "most urgent first")
	assert.Equal(t, FollowUpOverdue, got[0].Bucket)
	assert.Equal(t, "Soon", got[1].Visit.Reason)
	assert.Equal(t, FollowUpDueSoon, got[1].Bucket)
}
