package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaymentBalanceAndStatus(t *testing.T) {
	tests := []struct {
		name        string
		due         int64
		paid        int64
		wantBalance int64
		wantStatus  PaymentStatus
	}{
		{"partially paid", 1200, 800, 400, PaymentStatusPartial},
		{"fully paid", 3500, 3500, 0, PaymentStatusPaid},
		{"nothing paid", 650, 0, 650, PaymentStatusPending},
		{"overpaid clamps to zero", 100, 150, 0, PaymentStatusPaid},
		{"zero due zero paid", 0, 0, 0, PaymentStatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Payment{
				AmountDue:  decimal.NewFromInt(tt.due),
				AmountPaid: decimal.NewFromInt(tt.paid),
			}
			assert.True(t, p.Balance().Equal(decimal.NewFromInt(tt.wantBalance)),
				"balance = %s, want %d", p.Balance(), tt.wantBalance)
			assert.Equal(t, tt.wantStatus, p.Status())
		})
	}
}

func TestPaymentCollected(t *testing.T) {
	p := Payment{AmountDue: decimal.NewFromInt(100), AmountPaid: decimal.NewFromInt(150)}
	assert.True(t, p.Collected().Equal(decimal.NewFromInt(100)), "collected caps at amount due")

	p = Payment{AmountDue: decimal.NewFromInt(100), AmountPaid: decimal.NewFromInt(40)}
	assert.True(t, p.Collected().Equal(decimal.NewFromInt(40)))
}
