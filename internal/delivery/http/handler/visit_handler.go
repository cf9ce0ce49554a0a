package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ahmadeq/test-clinic-demo/internal/delivery/dto"
	"github.com/ahmadeq/test-clinic-demo/internal/usecase"
	"github.com/ahmadeq/test-clinic-demo/pkg/response"
	"github.com/ahmadeq/test-clinic-demo/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type VisitHandler struct {
	visitUsecase usecase.VisitUsecase
	validator    *validator.CustomValidator
}

func NewVisitHandler(visitUsecase usecase.VisitUsecase, validator *validator.CustomValidator) *VisitHandler {
	return &VisitHandler{
		visitUsecase: visitUsecase,
		validator:    validator,
	}
}

func (h *VisitHandler) CreateVisit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid visit or follow-up date", nil)
		default:
			response.InternalServerError(w, "Failed to create visit")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Visit created successfully", visit)
}

func (h *VisitHandler) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	visitID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	var req dto.UpdateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.Update(r.Context(), visitID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid visit or follow-up date", nil)
		default:
			response.InternalServerError(w, "Failed to update visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit updated successfully", visit)
}

func (h *VisitHandler) GetVisit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	visitID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	visit, err := h.visitUsecase.Get(r.Context(), visitID)
	if err != nil {
		response.NotFound(w, "Visit not found")
		return
	}

	response.Success(w, http.StatusOK, "Visit retrieved successfully", visit)
}

func (h *VisitHandler) GetAllVisits(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := dto.VisitListQuery{
		Diagnoses: query["diagnosis"],
	}

	if raw := query.Get("patient_id"); raw != "" {
		patientID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid patient_id", nil)
			return
		}
		q.PatientID = &patientID
	}
	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid from date", nil)
			return
		}
		q.From = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid to date", nil)
			return
		}
		q.To = &to
	}

	visits, err := h.visitUsecase.List(r.Context(), &q)
	if err != nil {
		response.InternalServerError(w, "Failed to get visits")
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

func (h *VisitHandler) GetFollowUps(w http.ResponseWriter, r *http.Request) {
	followUps, err := h.visitUsecase.FollowUps(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get follow-ups")
		return
	}

	response.Success(w, http.StatusOK, "Follow-ups retrieved successfully", followUps)
}
