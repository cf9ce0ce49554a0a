package analytics

import (
	"testing"
	"time"

	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payment(due, paid int64, recorded time.Time) entity.Payment {
	return entity.Payment{
		AmountDue:  decimal.NewFromInt(due),
		AmountPaid: decimal.NewFromInt(paid),
		RecordedAt: recorded,
	}
}

func TestRevenue(t *testing.T) {
	recorded := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	payments := []entity.Payment{
		payment(1200, 800, recorded),  // partial, outstanding 400
		payment(3500, 3500, recorded), // paid
		payment(650, 0, recorded),     // pending
		payment(100, 150, recorded),   // overpaid: collected capped at 100
	}

	got := Revenue(payments)
	assert.True(t, got.TotalBilled.Equal(decimal.NewFromInt(5450)))
	assert.True(t, got.TotalCollected.Equal(decimal.NewFromInt(4400)), "collected = 800+3500+0+100")
	assert.True(t, got.TotalOutstanding.Equal(decimal.NewFromInt(1050)), "outstanding = 400+650, overpayment not negative")
	assert.Equal(t, 2, got.CountByStatus[entity.PaymentStatusPaid])
	assert.Equal(t, 1, got.CountByStatus[entity.PaymentStatusPending])
	assert.Equal(t, 1, got.CountByStatus[entity.PaymentStatusPartial])
}

func TestMonthlyRevenueKeepsLastSixBuckets(t *testing.T) {
	payments := []entity.Payment{}
	for month := 1; month <= 8; month++ {
		payments = append(payments, payment(100, 100, time.Date(2025, time.Month(month), 15, 0, 0, 0, 0, time.UTC)))
	}
	// Out-of-order extra payment in an already seen month
	payments = append(payments, payment(50, 50, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)))

	got := MonthlyRevenue(payments)
	require.Len(t, got, 6)
	assert.Equal(t, "2025-03", got[0].Month, "oldest retained bucket")
	assert.Equal(t, "2025-08", got[5].Month, "ascending order")
	assert.True(t, got[0].Collected.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 2, got[0].Payments)
}

func TestMonthlyVisits(t *testing.T) {
	visits := []entity.Visit{
		{VisitDate: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)},
		{VisitDate: time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC)},
		{VisitDate: time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)},
	}

	got := MonthlyVisits(visits)
	require.Len(t, got, 2)
	assert.Equal(t, VisitBucket{Month: "2025-09", Visits: 2}, got[0])
	assert.Equal(t, VisitBucket{Month: "2025-10", Visits: 1}, got[1])
}
