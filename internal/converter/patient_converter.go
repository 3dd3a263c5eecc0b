package converter

import (
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               patient.ID,
		MRNumber:         patient.MRNumber,
		FirstName:        patient.FirstName,
		LastName:         patient.LastName,
		DateOfBirth:      patient.DateOfBirth.Format("2006-01-02"),
		Gender:           patient.Gender,
		BloodGroup:       patient.BloodGroup,
		Address:          patient.Address,
		ContactNumber:    patient.ContactNumber,
		Email:            patient.Email,
		HospitalID:       patient.HospitalID,
		RegistrationDate: patient.RegistrationDate,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
