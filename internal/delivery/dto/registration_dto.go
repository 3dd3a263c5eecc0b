package dto

import (
	"time"
)

// Role-specific registration request DTOs. Each creates the login credential
// and the role entity in one transaction; patient registration lives in
// patient_dto.go and creates no credential.

type RegisterUserRequest struct {
	Username        string `json:"username" validate:"required,max=150"`
	FirstName       string `json:"first_name" validate:"required,max=30"`
	LastName        string `json:"last_name" validate:"required,max=30"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type RegisterHospitalRequest struct {
	Username        string `json:"username" validate:"required,max=150"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`

	Name               string `json:"name" validate:"required,max=200"`
	RegistrationNumber string `json:"registration_number" validate:"required,max=50"`
	HospitalType       string `json:"hospital_type" validate:"required,oneof=public private military trust ngo"`

	StreetAddress string `json:"street_address" validate:"required,max=255"`
	City          string `json:"city" validate:"required,max=100"`
	State         string `json:"state" validate:"required,max=100"`
	PostalCode    string `json:"postal_code" validate:"required,max=20"`
	Country       string `json:"country" validate:"required,max=100"`

	ContactPersonName string `json:"contact_person_name" validate:"required,max=100"`
	Designation       string `json:"designation" validate:"required,max=100"`
	ContactNumber     string `json:"contact_number" validate:"required,max=15"`
	Email             string `json:"email" validate:"required,email"`
	AlternateContact  string `json:"alternate_contact" validate:"omitempty,max=15"`
	FaxNumber         string `json:"fax_number" validate:"omitempty,max=15"`
}

// RegisterClinicRequest resolves its hospital by name, not by id: the first
// hospital whose name contains HospitalName (case-insensitive) wins, and a
// placeholder hospital is created when nothing matches.
type RegisterClinicRequest struct {
	Name               string `json:"name" validate:"required,max=200"`
	ClinicType         string `json:"clinic_type" validate:"required,oneof=general dental eye physiotherapy homeopathy cardiology dermatology neurology orthopedic pediatric gynecology other"`
	RegistrationNumber string `json:"registration_number" validate:"required,max=50"`
	LicenseNumber      string `json:"license_number" validate:"required,max=50"`
	EstablishmentYear  *int   `json:"establishment_year" validate:"omitempty,gte=1800"`
	HospitalName       string `json:"hospital_name" validate:"required,max=200"`
	Specialization     string `json:"specialization" validate:"required,max=200"`

	Email           string `json:"email" validate:"required,email"`
	ContactNumber   string `json:"contact_number" validate:"required,max=15"`
	AlternateNumber string `json:"alternate_number" validate:"omitempty,max=15"`
	WhatsappNumber  string `json:"whatsapp_number" validate:"omitempty,max=15"`
	Website         string `json:"website" validate:"omitempty,url"`

	StreetAddress string `json:"street_address" validate:"required,max=255"`
	City          string `json:"city" validate:"required,max=100"`
	State         string `json:"state" validate:"required,max=100"`
	PostalCode    string `json:"postal_code" validate:"required,max=20"`
	Country       string `json:"country" validate:"required,max=100"`

	OwnerName   string `json:"owner_name" validate:"required,max=100"`
	CNICNumber  string `json:"cnic_number" validate:"required,max=20"`
	Designation string `json:"designation" validate:"required,max=100"`
	OwnerMobile string `json:"owner_mobile" validate:"required,max=15"`
	OwnerEmail  string `json:"owner_email" validate:"required,email"`

	Username        string `json:"username" validate:"required,max=150"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type RegisterDoctorRequest struct {
	Username        string `json:"username" validate:"required,max=150"`
	FirstName       string `json:"first_name" validate:"required,max=30"`
	LastName        string `json:"last_name" validate:"required,max=30"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`

	Specialization string `json:"specialization" validate:"required,max=100"`
	LicenseNumber  string `json:"license_number" validate:"required,max=50"`
	ContactNumber  string `json:"contact_number" validate:"omitempty,max=15"`
	ClinicID       *uint  `json:"clinic_id" validate:"omitempty"`
}

type RegisterHospitalAdminRequest struct {
	Username        string `json:"username" validate:"required,max=150"`
	FirstName       string `json:"first_name" validate:"required,max=30"`
	LastName        string `json:"last_name" validate:"required,max=30"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`

	HospitalID    uint   `json:"hospital_id" validate:"required"`
	Position      string `json:"position" validate:"required,max=100"`
	ContactNumber string `json:"contact_number" validate:"required,max=20"`
}

// Response DTOs

type HospitalResponse struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	RegistrationNumber string    `json:"registration_number"`
	HospitalType       string    `json:"hospital_type"`
	City               string    `json:"city"`
	Country            string    `json:"country"`
	ContactNumber      string    `json:"contact_number"`
	Email              string    `json:"email"`
	RegistrationDate   time.Time `json:"registration_date"`
}

type ClinicResponse struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	ClinicType         string    `json:"clinic_type"`
	RegistrationNumber string    `json:"registration_number"`
	LicenseNumber      string    `json:"license_number"`
	Specialization     string    `json:"specialization"`
	HospitalID         uint      `json:"hospital_id"`
	HospitalName       string    `json:"hospital_name,omitempty"`
	RegistrationDate   time.Time `json:"registration_date"`
}

type DoctorResponse struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	FullName       string    `json:"full_name"`
	Specialization string    `json:"specialization"`
	LicenseNumber  string    `json:"license_number"`
	ContactNumber  string    `json:"contact_number,omitempty"`
	ClinicID       *uint     `json:"clinic_id,omitempty"`
	JoinDate       time.Time `json:"join_date"`
}

type HospitalAdminResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	FullName      string    `json:"full_name"`
	HospitalID    uint      `json:"hospital_id"`
	Position      string    `json:"position"`
	ContactNumber string    `json:"contact_number"`
	JoinDate      time.Time `json:"join_date"`
}
