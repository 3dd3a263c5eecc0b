package dto

import (
	"time"
)

// CreateRecordRequest appends one visit record to an existing patient. The
// authoring doctor is taken from the session capability, never from the body.
type CreateRecordRequest struct {
	Symptoms     string `json:"symptoms" validate:"required"`
	Diagnosis    string `json:"diagnosis" validate:"required"`
	Prescription string `json:"prescription" validate:"required"`
	Notes        string `json:"notes" validate:"omitempty"`
	NextVisit    string `json:"next_visit" validate:"omitempty,datetime=2006-01-02"`
}

type RecordResponse struct {
	ID           uint      `json:"id"`
	PatientID    uint      `json:"patient_id"`
	DoctorID     *uint     `json:"doctor_id,omitempty"`
	DoctorName   string    `json:"doctor_name,omitempty"`
	VisitDate    time.Time `json:"visit_date"`
	Symptoms     string    `json:"symptoms"`
	Diagnosis    string    `json:"diagnosis"`
	Prescription string    `json:"prescription"`
	Notes        string    `json:"notes,omitempty"`
	NextVisit    *string   `json:"next_visit,omitempty"`
}
