package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePaymentRequest struct {
	PatientID     uuid.UUID       `json:"patient_id" validate:"required"`
	VisitID       *uuid.UUID      `json:"visit_id"`
	AmountDue     decimal.Decimal `json:"amount_due" validate:"required"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Method        string          `json:"method" validate:"required,oneof=cash card insurance transfer"`
	InvoiceNumber string          `json:"invoice_number"`
	Notes         string          `json:"notes"`
}

// UpdatePaymentRequest deliberately has no patient_id or recorded_at field;
// both are immutable after creation.
type UpdatePaymentRequest struct {
	VisitID       *uuid.UUID       `json:"visit_id"`
	AmountDue     *decimal.Decimal `json:"amount_due"`
	AmountPaid    *decimal.Decimal `json:"amount_paid"`
	Method        *string          `json:"method" validate:"omitempty,oneof=cash card insurance transfer"`
	InvoiceNumber *string          `json:"invoice_number"`
	Notes         *string          `json:"notes"`
}

// PaymentListQuery filters the payment log
type PaymentListQuery struct {
	PatientID *uuid.UUID
	Status    string
}

// Response DTOs

type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	PatientID     uuid.UUID       `json:"patient_id"`
	VisitID       *uuid.UUID      `json:"visit_id,omitempty"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status"`
	Method        string          `json:"method"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	RecordedAt    time.Time       `json:"recorded_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}
