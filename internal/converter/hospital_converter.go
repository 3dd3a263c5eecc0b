package converter

import (
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to its response DTO
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:                 hospital.ID,
		Name:               hospital.Name,
		RegistrationNumber: hospital.RegistrationNumber,
		HospitalType:       hospital.HospitalType,
		City:               hospital.City,
		Country:            hospital.Country,
		ContactNumber:      hospital.ContactNumber,
		Email:              hospital.Email,
		RegistrationDate:   hospital.RegistrationDate,
	}
}

// ClinicToResponse converts a Clinic entity to its response DTO
func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	if clinic == nil {
		return nil
	}

	resp := &dto.ClinicResponse{
		ID:                 clinic.ID,
		Name:               clinic.Name,
		ClinicType:         clinic.ClinicType,
		RegistrationNumber: clinic.RegistrationNumber,
		LicenseNumber:      clinic.LicenseNumber,
		Specialization:     clinic.Specialization,
		HospitalID:         clinic.HospitalID,
		RegistrationDate:   clinic.RegistrationDate,
	}

	if clinic.Hospital != nil {
		resp.HospitalName = clinic.Hospital.Name
	}

	return resp
}
