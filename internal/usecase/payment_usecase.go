package usecase

import (
	"context"
	"errors"

	"github.com/ahmadeq/test-clinic-demo/internal/analytics"
	"github.com/ahmadeq/test-clinic-demo/internal/converter"
	"github.com/ahmadeq/test-clinic-demo/internal/delivery/dto"
	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"
	"github.com/ahmadeq/test-clinic-demo/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrNegativeAmount  = errors.New("amounts must not be negative")
	ErrPaidExceedsDue  = errors.New("amount paid exceeds amount due")
	ErrUnknownVisit    = errors.New("referenced visit not found")
)

type PaymentUsecase interface {
	Create(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error)
	List(ctx context.Context, q *dto.PaymentListQuery) (*dto.PaymentListResponse, error)
}

type paymentUsecase struct {
	clinic *store.Store
	log    *logrus.Logger
}

func NewPaymentUsecase(clinic *store.Store, log *logrus.Logger) PaymentUsecase {
	return &paymentUsecase{clinic: clinic, log: log}
}

// Create enforces the form-boundary rules (non-negative amounts, paid not
// above due, references resolve). The store itself accepts any values.
func (u *paymentUsecase) Create(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if req.AmountDue.IsNegative() || req.AmountPaid.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if req.AmountPaid.GreaterThan(req.AmountDue) {
		return nil, ErrPaidExceedsDue
	}

	state := u.clinic.Snapshot()
	if state.FindPatient(req.PatientID) == nil {
		return nil, ErrPatientNotFound
	}
	if req.VisitID != nil && state.FindVisit(*req.VisitID) == nil {
		return nil, ErrUnknownVisit
	}

	payment := u.clinic.AddPayment(ctx, store.AddPayment{
		PatientID:     req.PatientID,
		VisitID:       req.VisitID,
		AmountDue:     req.AmountDue,
		AmountPaid:    req.AmountPaid,
		Method:        entity.PaymentMethod(req.Method),
		InvoiceNumber: req.InvoiceNumber,
		Notes:         req.Notes,
	})

	u.log.Infof("Payment recorded: %s for patient %s", payment.ID, payment.PatientID)
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	if req.AmountDue != nil && req.AmountDue.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if req.AmountPaid != nil && req.AmountPaid.IsNegative() {
		return nil, ErrNegativeAmount
	}

	state := u.clinic.Snapshot()
	current := state.FindPayment(id)
	if current == nil {
		return nil, ErrPaymentNotFound
	}

	// The paid <= due rule holds against the amounts as they will be after
	// the merge, so lowering due below the already paid amount is rejected too.
	due := current.AmountDue
	if req.AmountDue != nil {
		due = *req.AmountDue
	}
	paid := current.AmountPaid
	if req.AmountPaid != nil {
		paid = *req.AmountPaid
	}
	if paid.GreaterThan(due) {
		return nil, ErrPaidExceedsDue
	}
	if req.VisitID != nil && state.FindVisit(*req.VisitID) == nil {
		return nil, ErrUnknownVisit
	}

	cmd := store.UpdatePayment{
		ID:            id,
		VisitID:       req.VisitID,
		AmountDue:     req.AmountDue,
		AmountPaid:    req.AmountPaid,
		InvoiceNumber: req.InvoiceNumber,
		Notes:         req.Notes,
	}
	if req.Method != nil {
		method := entity.PaymentMethod(*req.Method)
		cmd.Method = &method
	}

	payment, ok := u.clinic.UpdatePayment(ctx, cmd)
	if !ok {
		return nil, ErrPaymentNotFound
	}
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error) {
	state := u.clinic.Snapshot()
	payment := state.FindPayment(id)
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) List(ctx context.Context, q *dto.PaymentListQuery) (*dto.PaymentListResponse, error) {
	state := u.clinic.Snapshot()

	payments := state.Payments
	if q.PatientID != nil {
		filtered := []entity.Payment{}
		for _, p := range payments {
			if p.PatientID == *q.PatientID {
				filtered = append(filtered, p)
			}
		}
		payments = filtered
	}
	if q.Status != "" {
		filtered := []entity.Payment{}
		for _, p := range payments {
			if string(analytics.PaymentStatusOf(&p)) == q.Status {
				filtered = append(filtered, p)
			}
		}
		payments = filtered
	}

	return converter.PaymentsToListResponse(payments), nil
}
