package converter

import (
	"github.com/ahmadeq/test-clinic-demo/internal/delivery/dto"
	"github.com/ahmadeq/test-clinic-demo/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(p *entity.Patient) *dto.PatientResponse {
	if p == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		FullName:  p.FullName(),
		Gender:    p.Gender,
		BirthDate: p.BirthDate.Format(dateLayout),
		Age:       p.Age,
		Contact: dto.ContactResponse{
			Phone:                 p.Contact.Phone,
			Email:                 p.Contact.Email,
			Address:               p.Contact.Address,
			EmergencyContactName:  p.Contact.EmergencyContactName,
			EmergencyContactPhone: p.Contact.EmergencyContactPhone,
		},
		ChronicConditions: p.ChronicConditions,
		Allergies:         p.Allergies,
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// PatientsToListResponse converts a patient slice to a list response
func PatientsToListResponse(patients []entity.Patient) *dto.PatientListResponse {
	out := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		out = append(out, *PatientToResponse(&patients[i]))
	}
	return &dto.PatientListResponse{Patients: out, Total: len(out)}
}
