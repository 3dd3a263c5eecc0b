package converter

import (
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO. The role string
// is supplied by the caller because it is derived, not stored.
func UserToResponse(user *entity.User, role string) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsStaff:   user.IsStaff,
		Role:      role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// DoctorToResponse converts a Doctor entity plus its User to a response DTO
func DoctorToResponse(doctor *entity.Doctor, user *entity.User) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	resp := &dto.DoctorResponse{
		ID:             doctor.ID,
		UserID:         doctor.UserID,
		Specialization: doctor.Specialization,
		LicenseNumber:  doctor.LicenseNumber,
		ContactNumber:  doctor.ContactNumber,
		ClinicID:       doctor.ClinicID,
		JoinDate:       doctor.JoinDate,
	}

	if user != nil {
		resp.FullName = user.FullName()
	}

	return resp
}

// HospitalAdminToResponse converts a HospitalAdmin entity plus its User to a response DTO
func HospitalAdminToResponse(admin *entity.HospitalAdmin, user *entity.User) *dto.HospitalAdminResponse {
	if admin == nil {
		return nil
	}

	resp := &dto.HospitalAdminResponse{
		ID:            admin.ID,
		UserID:        admin.UserID,
		HospitalID:    admin.HospitalID,
		Position:      admin.Position,
		ContactNumber: admin.ContactNumber,
		JoinDate:      admin.JoinDate,
	}

	if user != nil {
		resp.FullName = user.FullName()
	}

	return resp
}
