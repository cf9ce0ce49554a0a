package converter

import (
	"github.com/ahmadeq/test-clinic-demo/internal/analytics"
	"github.com/ahmadeq/test-clinic-demo/internal/delivery/dto"
	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"
)

// VisitToResponse converts a Visit entity to its response DTO
func VisitToResponse(v *entity.Visit) *dto.VisitResponse {
	if v == nil {
		return nil
	}

	resp := &dto.VisitResponse{
		ID:            v.ID,
		PatientID:     v.PatientID,
		VisitDate:     v.VisitDate.Format(dateLayout),
		Reason:        v.Reason,
		Complaints:    v.Complaints,
		Diagnoses:     v.Diagnoses,
		TreatmentPlan: v.TreatmentPlan,
		Notes:         v.Notes,
		Vitals: dto.VitalsResponse{
			BloodPressure:    v.Vitals.BloodPressure,
			HeartRate:        v.Vitals.HeartRate,
			Temperature:      v.Vitals.Temperature,
			OxygenSaturation: v.Vitals.OxygenSaturation,
		},
		Physician: v.Physician,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	if v.FollowUpDate != nil {
		resp.FollowUpDate = v.FollowUpDate.Format(dateLayout)
	}
	return resp
}

// VisitsToListResponse converts a visit slice to a list response
func VisitsToListResponse(visits []entity.Visit) *dto.VisitListResponse {
	out := make([]dto.VisitResponse, 0, len(visits))
	for i := range visits {
		out = append(out, *VisitToResponse(&visits[i]))
	}
	return &dto.VisitListResponse{Visits: out, Total: len(out)}
}

// FollowUpsToListResponse joins classified follow-ups with patient names
func FollowUpsToListResponse(followUps []analytics.UpcomingFollowUp, patients []entity.Patient) *dto.FollowUpListResponse {
	names := make(map[string]string, len(patients))
	for i := range patients {
		names[patients[i].ID.String()] = patients[i].FullName()
	}

	out := make([]dto.FollowUpResponse, 0, len(followUps))
	for _, f := range followUps {
		out = append(out, dto.FollowUpResponse{
			VisitID:      f.Visit.ID,
			PatientID:    f.Visit.PatientID,
			PatientName:  names[f.Visit.PatientID.String()],
			VisitDate:    f.Visit.VisitDate.Format(dateLayout),
			FollowUpDate: f.Visit.FollowUpDate.Format(dateLayout),
			Days:         f.Days,
			Bucket:       string(f.Bucket),
			Label:        analytics.FollowUpLabel(f.Bucket, f.Days),
		})
	}
	return &dto.FollowUpListResponse{FollowUps: out, Total: len(out)}
}
