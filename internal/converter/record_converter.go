package converter

import (
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/domain/entity"
)

// RecordToResponse converts a PatientRecord entity to its response DTO
func RecordToResponse(record *entity.PatientRecord) *dto.RecordResponse {
	if record == nil {
		return nil
	}

	resp := &dto.RecordResponse{
		ID:           record.ID,
		PatientID:    record.PatientID,
		DoctorID:     record.DoctorID,
		VisitDate:    record.VisitDate,
		Symptoms:     record.Symptoms,
		Diagnosis:    record.Diagnosis,
		Prescription: record.Prescription,
		Notes:        record.Notes,
	}

	if record.NextVisit != nil {
		nextVisit := record.NextVisit.Format("2006-01-02")
		resp.NextVisit = &nextVisit
	}

	if record.Doctor != nil && record.Doctor.User != nil {
		resp.DoctorName = record.Doctor.User.FullName()
	}

	return resp
}

func RecordsToResponses(records []entity.PatientRecord) []dto.RecordResponse {
	responses := make([]dto.RecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *RecordToResponse(&records[i]))
	}
	return responses
}
