package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ahmadeq/test-clinic-demo/internal/delivery/dto"
	"github.com/ahmadeq/test-clinic-demo/internal/usecase"
	"github.com/ahmadeq/test-clinic-demo/pkg/response"
	"github.com/ahmadeq/test-clinic-demo/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrUnknownVisit:
			response.NotFound(w, "Visit not found")
		case usecase.ErrNegativeAmount:
			response.Error(w, http.StatusBadRequest, "Amounts must not be negative", nil)
		case usecase.ErrPaidExceedsDue:
			response.Error(w, http.StatusBadRequest, "Amount paid cannot exceed amount due", nil)
		default:
			response.InternalServerError(w, "Failed to record payment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Payment recorded successfully", payment)
}

func (h *PaymentHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	paymentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	var req dto.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.Update(r.Context(), paymentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPaymentNotFound:
			response.NotFound(w, "Payment not found")
		case usecase.ErrNegativeAmount:
			response.Error(w, http.StatusBadRequest, "Amounts must not be negative", nil)
		default:
			response.InternalServerError(w, "Failed to update payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment updated successfully", payment)
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	paymentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	payment, err := h.paymentUsecase.Get(r.Context(), paymentID)
	if err != nil {
		response.NotFound(w, "Payment not found")
		return
	}

	response.Success(w, http.StatusOK, "Payment retrieved successfully", payment)
}

func (h *PaymentHandler) GetAllPayments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := dto.PaymentListQuery{
		Status: query.Get("status"),
	}

	if raw := query.Get("patient_id"); raw != "" {
		patientID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid patient_id", nil)
			return
		}
		q.PatientID = &patientID
	}

	payments, err := h.paymentUsecase.List(r.Context(), &q)
	if err != nil {
		response.InternalServerError(w, "Failed to get payments")
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}
