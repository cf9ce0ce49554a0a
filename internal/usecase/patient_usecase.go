package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/ahmadeq/test-clinic-demo/internal/analytics"
	"github.com/ahmadeq/test-clinic-demo/internal/converter"
	"github.com/ahmadeq/test-clinic-demo/internal/delivery/dto"
	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"
	"github.com/ahmadeq/test-clinic-demo/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidDate     = errors.New("invalid date")
)

const dateLayout = "2006-01-02"

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	List(ctx context.Context, q *dto.PatientListQuery) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	clinic *store.Store
	log    *logrus.Logger
}

func NewPatientUsecase(clinic *store.Store, log *logrus.Logger) PatientUsecase {
	return &patientUsecase{clinic: clinic, log: log}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	patient := u.clinic.AddPatient(ctx, store.AddPatient{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		BirthDate: birthDate,
		Contact: entity.Contact{
			Phone:                 req.Phone,
			Email:                 req.Email,
			Address:               req.Address,
			EmergencyContactName:  req.EmergencyContactName,
			EmergencyContactPhone: req.EmergencyContactPhone,
		},
		ChronicConditions: req.ChronicConditions,
		Allergies:         req.Allergies,
		Notes:             req.Notes,
	})

	u.log.Infof("Patient created: %s", patient.ID)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	cmd := store.UpdatePatient{
		ID:                id,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Gender:            req.Gender,
		ChronicConditions: req.ChronicConditions,
		Allergies:         req.Allergies,
		Notes:             req.Notes,
	}

	if req.BirthDate != nil {
		birthDate, err := time.Parse(dateLayout, *req.BirthDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		cmd.BirthDate = &birthDate
	}

	if req.Phone != nil || req.Email != nil || req.Address != nil ||
		req.EmergencyContactName != nil || req.EmergencyContactPhone != nil {
		cmd.Contact = &store.ContactPatch{
			Phone:                 req.Phone,
			Email:                 req.Email,
			Address:               req.Address,
			EmergencyContactName:  req.EmergencyContactName,
			EmergencyContactPhone: req.EmergencyContactPhone,
		}
	}

	patient, ok := u.clinic.UpdatePatient(ctx, cmd)
	if !ok {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	state := u.clinic.Snapshot()
	patient := state.FindPatient(id)
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context, q *dto.PatientListQuery) (*dto.PatientListResponse, error) {
	state := u.clinic.Snapshot()
	patients := analytics.FilterPatients(state.Patients, state.Visits, analytics.PatientCriteria{
		Search:            q.Search,
		Genders:           q.Genders,
		AgeMin:            q.AgeMin,
		AgeMax:            q.AgeMax,
		ChronicConditions: q.ChronicConditions,
		Diagnoses:         q.Diagnoses,
	})
	return converter.PatientsToListResponse(patients), nil
}
