package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/usecase"
	"hospital-management-system/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRegistrationUsecase struct {
	userResp     *dto.UserResponse
	hospitalResp *dto.HospitalResponse
	clinicResp   *dto.ClinicResponse
	err          error
}

func (s *stubRegistrationUsecase) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	return s.userResp, s.err
}

func (s *stubRegistrationUsecase) RegisterHospital(ctx context.Context, req *dto.RegisterHospitalRequest) (*dto.HospitalResponse, error) {
	return s.hospitalResp, s.err
}

func (s *stubRegistrationUsecase) RegisterClinic(ctx context.Context, req *dto.RegisterClinicRequest) (*dto.ClinicResponse, error) {
	return s.clinicResp, s.err
}

func (s *stubRegistrationUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error) {
	return nil, s.err
}

func (s *stubRegistrationUsecase) RegisterHospitalAdmin(ctx context.Context, req *dto.RegisterHospitalAdminRequest) (*dto.HospitalAdminResponse, error) {
	return nil, s.err
}

func newRegistrationHandler(stub *stubRegistrationUsecase) *RegistrationHandler {
	return NewRegistrationHandler(stub, validator.NewValidator())
}

func validUserRequest() dto.RegisterUserRequest {
	return dto.RegisterUserRequest{
		Username:        "visitor",
		FirstName:       "Vis",
		LastName:        "Itor",
		Email:           "visitor@example.com",
		Password:        "s3cretpass",
		ConfirmPassword: "s3cretpass",
	}
}

func TestRegisterUserSuccess(t *testing.T) {
	stub := &stubRegistrationUsecase{
		userResp: &dto.UserResponse{ID: 1, Username: "visitor", Role: "user"},
	}
	h := newRegistrationHandler(stub)

	w := postJSON(t, h.RegisterUser, "/api/v1/register", validUserRequest())

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
}

func TestRegisterUserDuplicateUsername(t *testing.T) {
	h := newRegistrationHandler(&stubRegistrationUsecase{err: usecase.ErrUsernameExists})

	w := postJSON(t, h.RegisterUser, "/api/v1/register", validUserRequest())

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Error map[string]string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "username already exists", resp.Error["username"])
}

func TestRegisterUserPasswordMismatch(t *testing.T) {
	h := newRegistrationHandler(&stubRegistrationUsecase{err: usecase.ErrPasswordMismatch})

	req := validUserRequest()
	req.ConfirmPassword = "different00"
	w := postJSON(t, h.RegisterUser, "/api/v1/register", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterUserShortPassword(t *testing.T) {
	h := newRegistrationHandler(&stubRegistrationUsecase{})

	req := validUserRequest()
	req.Password = "short"
	req.ConfirmPassword = "short"
	w := postJSON(t, h.RegisterUser, "/api/v1/register", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Validation failed", resp.Message)
}

func TestRegisterClinicDuplicateRegistrationNumber(t *testing.T) {
	h := newRegistrationHandler(&stubRegistrationUsecase{err: usecase.ErrClinicRegNumberExists})

	w := postJSON(t, h.RegisterClinic, "/api/v1/register/clinic", dto.RegisterClinicRequest{
		Name:               "City Clinic",
		ClinicType:         "general",
		RegistrationNumber: "CL-100",
		LicenseNumber:      "LIC-1",
		HospitalName:       "City Hospital",
		Specialization:     "general medicine",
		Email:              "clinic@example.com",
		ContactNumber:      "5551234567",
		StreetAddress:      "12 Main St",
		City:               "Springfield",
		State:              "IL",
		PostalCode:         "62701",
		Country:            "USA",
		OwnerName:          "Pat Owner",
		CNICNumber:         "12345-6789012-3",
		Designation:        "director",
		OwnerMobile:        "5559876543",
		OwnerEmail:         "owner@example.com",
		Username:           "cityclinic",
		Password:           "s3cretpass",
		ConfirmPassword:    "s3cretpass",
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Error map[string]string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp.Error, "registration_number")
}

func TestRegisterHospitalAdminUnknownHospital(t *testing.T) {
	h := newRegistrationHandler(&stubRegistrationUsecase{err: usecase.ErrHospitalNotFound})

	w := postJSON(t, h.RegisterHospitalAdmin, "/api/v1/register/hospital-admin", dto.RegisterHospitalAdminRequest{
		Username:        "hadmin",
		FirstName:       "Hos",
		LastName:        "Admin",
		Email:           "hadmin@example.com",
		Password:        "s3cretpass",
		ConfirmPassword: "s3cretpass",
		HospitalID:      99,
		Position:        "operations",
		ContactNumber:   "5551234567",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "hospital not found", resp.Message)
}

func TestRegisterUserInvalidBody(t *testing.T) {
	h := newRegistrationHandler(&stubRegistrationUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	h.RegisterUser(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
