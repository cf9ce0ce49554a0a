package converter

import (
	"github.com/ahmadeq/test-clinic-demo/internal/delivery/dto"
	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to its response DTO.
// Balance and status are derived here, never read from storage.
func PaymentToResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:            p.ID,
		PatientID:     p.PatientID,
		VisitID:       p.VisitID,
		AmountDue:     p.AmountDue,
		AmountPaid:    p.AmountPaid,
		Balance:       p.Balance(),
		Status:        string(p.Status()),
		Method:        string(p.Method),
		InvoiceNumber: p.InvoiceNumber,
		Notes:         p.Notes,
		RecordedAt:    p.RecordedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// PaymentsToListResponse converts a payment slice to a list response
func PaymentsToListResponse(payments []entity.Payment) *dto.PaymentListResponse {
	out := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, *PaymentToResponse(&payments[i]))
	}
	return &dto.PaymentListResponse{Payments: out, Total: len(out)}
}
