package dto

import (
	"time"
)

// RegisterPatientRequest creates no login credential; the MR number in the
// response is the patient's only handle afterwards.
type RegisterPatientRequest struct {
	FirstName     string `json:"first_name" validate:"required,max=100"`
	LastName      string `json:"last_name" validate:"required,max=100"`
	DateOfBirth   string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender        string `json:"gender" validate:"required,oneof=M F O"`
	BloodGroup    string `json:"blood_group" validate:"omitempty,max=5"`
	Address       string `json:"address" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required,max=15"`
	Email         string `json:"email" validate:"omitempty,email"`
	HospitalID    uint   `json:"hospital_id" validate:"required"`
}

type PatientResponse struct {
	ID               uint      `json:"id"`
	MRNumber         string    `json:"mr_number"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	DateOfBirth      string    `json:"date_of_birth"`
	Gender           string    `json:"gender"`
	BloodGroup       string    `json:"blood_group,omitempty"`
	Address          string    `json:"address"`
	ContactNumber    string    `json:"contact_number"`
	Email            string    `json:"email,omitempty"`
	HospitalID       uint      `json:"hospital_id"`
	RegistrationDate time.Time `json:"registration_date"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

type PatientDetailResponse struct {
	Patient PatientResponse  `json:"patient"`
	Records []RecordResponse `json:"records"`
}
