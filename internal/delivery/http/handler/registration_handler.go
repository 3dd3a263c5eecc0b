package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/usecase"
	"hospital-management-system/pkg/response"
	"hospital-management-system/pkg/validator"
)

type RegistrationHandler struct {
	registrationUsecase usecase.RegistrationUsecase
	validator           *validator.CustomValidator
}

func NewRegistrationHandler(registrationUsecase usecase.RegistrationUsecase, validator *validator.CustomValidator) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUsecase: registrationUsecase,
		validator:           validator,
	}
}

// RegisterUser handles plain user registration
// @Summary Register a new user
// @Description Register a plain user account with no role privileges
// @Tags Registration
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "Register User Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /register [post]
func (h *RegistrationHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.registrationUsecase.RegisterUser(r.Context(), &req)
	if err != nil {
		h.writeRegistrationError(w, err, "Failed to register user")
		return
	}

	response.Success(w, http.StatusCreated, "User registered successfully", user)
}

// RegisterHospital handles hospital registration
// @Summary Register a new hospital
// @Description Register a hospital together with its owning user account
// @Tags Registration
// @Accept json
// @Produce json
// @Param request body dto.RegisterHospitalRequest true "Register Hospital Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /register/hospital [post]
func (h *RegistrationHandler) RegisterHospital(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.registrationUsecase.RegisterHospital(r.Context(), &req)
	if err != nil {
		h.writeRegistrationError(w, err, "Failed to register hospital")
		return
	}

	response.Success(w, http.StatusCreated, "Hospital registered successfully", hospital)
}

// RegisterClinic handles clinic registration
// @Summary Register a new clinic
// @Description Register a clinic, resolving its hospital by name or creating a placeholder, plus a staff user account
// @Tags Registration
// @Accept json
// @Produce json
// @Param request body dto.RegisterClinicRequest true "Register Clinic Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /register/clinic [post]
func (h *RegistrationHandler) RegisterClinic(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinic, err := h.registrationUsecase.RegisterClinic(r.Context(), &req)
	if err != nil {
		h.writeRegistrationError(w, err, "Failed to register clinic")
		return
	}

	response.Success(w, http.StatusCreated, "Clinic registered successfully", clinic)
}

// RegisterDoctor handles doctor registration
// @Summary Register a new doctor
// @Description Register a doctor with its user account and optional clinic assignment
// @Tags Registration
// @Accept json
// @Produce json
// @Param request body dto.RegisterDoctorRequest true "Register Doctor Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /register/doctor [post]
func (h *RegistrationHandler) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.registrationUsecase.RegisterDoctor(r.Context(), &req)
	if err != nil {
		h.writeRegistrationError(w, err, "Failed to register doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor registered successfully", doctor)
}

// RegisterHospitalAdmin handles hospital admin registration
// @Summary Register a new hospital admin
// @Description Register a hospital admin bound to an existing hospital
// @Tags Registration
// @Accept json
// @Produce json
// @Param request body dto.RegisterHospitalAdminRequest true "Register Hospital Admin Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /register/hospital-admin [post]
func (h *RegistrationHandler) RegisterHospitalAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterHospitalAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admin, err := h.registrationUsecase.RegisterHospitalAdmin(r.Context(), &req)
	if err != nil {
		h.writeRegistrationError(w, err, "Failed to register hospital admin")
		return
	}

	response.Success(w, http.StatusCreated, "Hospital admin registered successfully", admin)
}

// writeRegistrationError maps the shared registration sentinels to statuses.
func (h *RegistrationHandler) writeRegistrationError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrPasswordMismatch:
		response.Error(w, http.StatusBadRequest, err.Error(), map[string]string{
			"confirm_password": "passwords do not match",
		})
	case usecase.ErrUsernameExists:
		response.Conflict(w, err.Error(), map[string]string{
			"username": "username already exists",
		})
	case usecase.ErrClinicRegNumberExists:
		response.Conflict(w, err.Error(), map[string]string{
			"registration_number": "registration number already exists",
		})
	case usecase.ErrClinicNotFound, usecase.ErrHospitalNotFound:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
