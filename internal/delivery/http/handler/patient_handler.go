package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/usecase"
	"hospital-management-system/pkg/response"
	"hospital-management-system/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	recordUsecase  usecase.RecordUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, recordUsecase usecase.RecordUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		recordUsecase:  recordUsecase,
		validator:      validator,
	}
}

// RegisterPatient handles patient registration
// @Summary Register a new patient
// @Description Register a patient and allocate a unique MR number; no login credential is created
// @Tags Patients
// @Accept json
// @Produce json
// @Param request body dto.RegisterPatientRequest true "Register Patient Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /register/patient [post]
func (h *PatientHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.RegisterPatient(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrHospitalNotFound:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", patient)
}

// ListPatients handles listing all patients
// @Summary List patients
// @Description List all patients, most recently registered first
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.ListPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// GetPatient handles patient detail lookup by MR number
// @Summary Get patient by MR number
// @Description Get one patient with all visit records, newest first
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param mr_number path string true "MR Number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{mr_number} [get]
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	mrNumber := mux.Vars(r)["mr_number"]

	detail, err := h.patientUsecase.GetPatientByMRNumber(r.Context(), mrNumber)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", detail)
}

// SearchRecords handles record lookup via the mr_number query parameter
// @Summary Search patient records
// @Description Look up a patient and their records by exact MR number
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param mr_number query string true "MR Number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patient-records [get]
func (h *PatientHandler) SearchRecords(w http.ResponseWriter, r *http.Request) {
	mrNumber := r.URL.Query().Get("mr_number")
	if mrNumber == "" {
		response.Error(w, http.StatusBadRequest, "mr_number query parameter is required", nil)
		return
	}

	detail, err := h.patientUsecase.GetPatientByMRNumber(r.Context(), mrNumber)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to search records")
		}
		return
	}

	response.Success(w, http.StatusOK, "Records retrieved successfully", detail)
}

// AddRecord handles appending a visit record to a patient
// @Summary Add a patient record
// @Description Append a visit record; the authoring doctor is attached only when the caller has doctor privileges
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param mr_number path string true "MR Number"
// @Param request body dto.CreateRecordRequest true "Create Record Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{mr_number}/add-record [post]
func (h *PatientHandler) AddRecord(w http.ResponseWriter, r *http.Request) {
	mrNumber := mux.Vars(r)["mr_number"]

	var req dto.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.AddRecord(r.Context(), mrNumber, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, err.Error())
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to add record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Record added successfully", record)
}
