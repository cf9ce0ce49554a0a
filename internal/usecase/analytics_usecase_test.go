package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverviewAggregatesSeedData(t *testing.T) {
	s := newTestStore(t)
	u := NewAnalyticsUsecase(s, logrus.StandardLogger(), WithAnalyticsClock(fixedNow))

	resp, err := u.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.PatientCount)
	assert.Equal(t, 3, resp.VisitCount)
	assert.Equal(t, 3, resp.PaymentCount)

	assert.True(t, resp.Revenue.TotalBilled.Equal(decimal.NewFromInt(180)))
	assert.True(t, resp.Revenue.TotalCollected.Equal(decimal.NewFromInt(85)))
	assert.True(t, resp.Revenue.TotalOutstanding.Equal(decimal.NewFromInt(95)))
	assert.Equal(t, 1, resp.Revenue.Paid)
	assert.Equal(t, 1, resp.Revenue.Pending)
	assert.Equal(t, 1, resp.Revenue.Partial)

	require.Len(t, resp.MonthlyRevenue, 1)
	assert.Equal(t, "2025-09", resp.MonthlyRevenue[0].Month)
	assert.True(t, resp.MonthlyRevenue[0].Collected.Equal(decimal.NewFromInt(85)))
}

func TestOverviewCountsFollowUpBuckets(t *testing.T) {
	s := newTestStore(t)
	u := NewAnalyticsUsecase(s, logrus.StandardLogger(), WithAnalyticsClock(fixedNow))

	// Seed follow-ups are 2025-10-10 and 2025-12-15, seen from 2025-11-01
	resp, err := u.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.FollowUps.Overdue)
	assert.Equal(t, 1, resp.FollowUps.Later)
	assert.Equal(t, 0, resp.FollowUps.DueToday)
	assert.Equal(t, 0, resp.FollowUps.DueSoon)
	assert.Equal(t, 0, resp.FollowUps.NextWeek)
}
