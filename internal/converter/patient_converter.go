package converter

import (
	"ehr-vaccine-service/internal/delivery/dto"
	"ehr-vaccine-service/internal/domain/dosing"
	"ehr-vaccine-service/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		MRN:         patient.MRN,
		FirstName:   patient.FirstName,
		LastName:    patient.LastName,
		DateOfBirth: dosing.FormatDate(patient.DateOfBirth()),
		Gender:      patient.Gender,
		Email:       patient.Email,
		Phone:       patient.Phone,
		Address:     patient.Address,
		CreatedAt:   patient.CreatedAt,
		UpdatedAt:   patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
