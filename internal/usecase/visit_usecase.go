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

var ErrVisitNotFound = errors.New("visit not found")

type VisitUsecase interface {
	Create(ctx context.Context, req *dto.CreateVisitRequest) (*dto.VisitResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.VisitResponse, error)
	List(ctx context.Context, q *dto.VisitListQuery) (*dto.VisitListResponse, error)
	FollowUps(ctx context.Context) (*dto.FollowUpListResponse, error)
}

type visitUsecase struct {
	clinic *store.Store
	log    *logrus.Logger
	now    func() time.Time
}

// VisitOption configures a VisitUsecase
type VisitOption func(*visitUsecase)

// WithVisitClock overrides the clock follow-up classification is relative to
func WithVisitClock(now func() time.Time) VisitOption {
	return func(u *visitUsecase) {
		u.now = now
	}
}

func NewVisitUsecase(clinic *store.Store, log *logrus.Logger, opts ...VisitOption) VisitUsecase {
	u := &visitUsecase{clinic: clinic, log: log, now: time.Now}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *visitUsecase) Create(ctx context.Context, req *dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	visitDate, err := time.Parse(dateLayout, req.VisitDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	// The store does not enforce the patient reference; the form boundary does.
	if u.clinic.Snapshot().FindPatient(req.PatientID) == nil {
		return nil, ErrPatientNotFound
	}

	cmd := store.AddVisit{
		PatientID:     req.PatientID,
		VisitDate:     visitDate,
		Reason:        req.Reason,
		Complaints:    req.Complaints,
		Diagnoses:     req.Diagnoses,
		TreatmentPlan: req.TreatmentPlan,
		Notes:         req.Notes,
		Physician:     req.Physician,
	}
	if req.FollowUpDate != "" {
		followUp, err := time.Parse(dateLayout, req.FollowUpDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		cmd.FollowUpDate = &followUp
	}
	if req.Vitals != nil {
		cmd.Vitals = entity.Vitals{
			BloodPressure:    req.Vitals.BloodPressure,
			HeartRate:        req.Vitals.HeartRate,
			Temperature:      req.Vitals.Temperature,
			OxygenSaturation: req.Vitals.OxygenSaturation,
		}
	}

	visit := u.clinic.AddVisit(ctx, cmd)
	u.log.Infof("Visit created: %s for patient %s", visit.ID, visit.PatientID)
	return converter.VisitToResponse(visit), nil
}

func (u *visitUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error) {
	cmd := store.UpdateVisit{
		ID:            id,
		Reason:        req.Reason,
		Complaints:    req.Complaints,
		Diagnoses:     req.Diagnoses,
		TreatmentPlan: req.TreatmentPlan,
		Notes:         req.Notes,
		Physician:     req.Physician,
	}

	if req.VisitDate != nil {
		visitDate, err := time.Parse(dateLayout, *req.VisitDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		cmd.VisitDate = &visitDate
	}
	if req.FollowUpDate != nil {
		followUp, err := time.Parse(dateLayout, *req.FollowUpDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		cmd.FollowUpDate = &followUp
	}
	if req.Vitals != nil {
		cmd.Vitals = &store.VitalsPatch{
			BloodPressure:    req.Vitals.BloodPressure,
			HeartRate:        req.Vitals.HeartRate,
			Temperature:      req.Vitals.Temperature,
			OxygenSaturation: req.Vitals.OxygenSaturation,
		}
	}

	visit, ok := u.clinic.UpdateVisit(ctx, cmd)
	if !ok {
		return nil, ErrVisitNotFound
	}
	return converter.VisitToResponse(visit), nil
}

func (u *visitUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.VisitResponse, error) {
	state := u.clinic.Snapshot()
	visit := state.FindVisit(id)
	if visit == nil {
		return nil, ErrVisitNotFound
	}
	return converter.VisitToResponse(visit), nil
}

func (u *visitUsecase) List(ctx context.Context, q *dto.VisitListQuery) (*dto.VisitListResponse, error) {
	state := u.clinic.Snapshot()
	visits := analytics.FilterVisits(state.Visits, analytics.VisitCriteria{
		PatientID: q.PatientID,
		Diagnoses: q.Diagnoses,
		From:      q.From,
		To:        q.To,
	})
	return converter.VisitsToListResponse(visits), nil
}

func (u *visitUsecase) FollowUps(ctx context.Context) (*dto.FollowUpListResponse, error) {
	state := u.clinic.Snapshot()
	followUps := analytics.UpcomingFollowUps(state.Visits, u.now())
	return converter.FollowUpsToListResponse(followUps, state.Patients), nil
}
