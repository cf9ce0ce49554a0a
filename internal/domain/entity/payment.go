package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash      PaymentMethod = "cash"
	PaymentMethodCard      PaymentMethod = "card"
	PaymentMethodInsurance PaymentMethod = "insurance"
	PaymentMethodTransfer  PaymentMethod = "transfer"
)

// PaymentStatus is derived from the billed and paid amounts, never stored
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
)

// Payment represents a billing record tied to a patient and optionally a visit.
// RecordedAt is set once at creation and never altered by updates.
type Payment struct {
	ID            uuid.UUID       `json:"id"`
	PatientID     uuid.UUID       `json:"patient_id"`
	VisitID       *uuid.UUID      `json:"visit_id,omitempty"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Method        PaymentMethod   `json:"method"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	RecordedAt    time.Time       `json:"recorded_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Balance returns the outstanding amount, floored at zero. Overpayments
// report a zero balance rather than a negative one.
func (p *Payment) Balance() decimal.Decimal {
	b := p.AmountDue.Sub(p.AmountPaid)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}

// Status classifies the payment: paid when nothing is outstanding, pending
// when nothing has been paid, partial otherwise. The paid check runs first so
// a zero-due payment classifies as paid.
func (p *Payment) Status() PaymentStatus {
	if p.Balance().IsZero() {
		return PaymentStatusPaid
	}
	if p.AmountPaid.IsZero() {
		return PaymentStatusPending
	}
	return PaymentStatusPartial
}

// Collected returns the amount counted as revenue: the paid amount capped at
// the billed amount.
func (p *Payment) Collected() decimal.Decimal {
	if p.AmountPaid.GreaterThan(p.AmountDue) {
		return p.AmountDue
	}
	return p.AmountPaid
}

// Clone returns a deep copy of the payment
func (p Payment) Clone() Payment {
	c := p
	if p.VisitID != nil {
		id := *p.VisitID
		c.VisitID = &id
	}
	return c
}
