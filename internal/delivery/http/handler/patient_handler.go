package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ahmadeq/test-clinic-demo/internal/delivery/dto"
	"github.com/ahmadeq/test-clinic-demo/internal/usecase"
	"github.com/ahmadeq/test-clinic-demo/pkg/response"
	"github.com/ahmadeq/test-clinic-demo/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid birth date", nil)
		default:
			response.InternalServerError(w, "Failed to create patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid birth date", nil)
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.patientUsecase.Get(r.Context(), patientID)
	if err != nil {
		response.NotFound(w, "Patient not found")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := dto.PatientListQuery{
		Search:            query.Get("search"),
		Genders:           query["gender"],
		ChronicConditions: query["chronic_condition"],
		Diagnoses:         query["diagnosis"],
	}

	if raw := query.Get("age_min"); raw != "" {
		ageMin, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid age_min", nil)
			return
		}
		q.AgeMin = &ageMin
	}
	if raw := query.Get("age_max"); raw != "" {
		ageMax, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid age_max", nil)
			return
		}
		q.AgeMax = &ageMax
	}

	patients, err := h.patientUsecase.List(r.Context(), &q)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}
