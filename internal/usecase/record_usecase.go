package usecase

import (
	"context"
	"fmt"
	"time"

	"hospital-management-system/internal/converter"
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/delivery/http/middleware"
	"hospital-management-system/internal/domain/entity"
	"hospital-management-system/internal/domain/repository"
	"hospital-management-system/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RecordUsecase appends visit records. There is deliberately no update or
// delete operation: visit history is immutable once written.
type RecordUsecase interface {
	AddRecord(ctx context.Context, mrNumber string, req *dto.CreateRecordRequest) (*dto.RecordResponse, error)
}

type recordUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	recordRepo   repository.PatientRecordRepository
	auditService service.AuditService
}

func NewRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	recordRepo repository.PatientRecordRepository,
	auditService service.AuditService,
) RecordUsecase {
	return &recordUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		recordRepo:   recordRepo,
		auditService: auditService,
	}
}

// AddRecord appends a record to the patient identified by MR number. The
// authoring doctor comes from the actor's derived capability: a non-doctor
// actor produces a record with no doctor attached.
func (u *recordUsecase) AddRecord(ctx context.Context, mrNumber string, req *dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	var nextVisit *time.Time
	if req.NextVisit != "" {
		parsed, err := time.Parse("2006-01-02", req.NextVisit)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		nextVisit = &parsed
	}

	patient, err := u.patientRepo.FindByMRNumber(ctx, u.db, mrNumber)
	if err != nil {
		u.log.Warnf("Failed to find patient by MR number: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	record := &entity.PatientRecord{
		PatientID:    patient.ID,
		Symptoms:     req.Symptoms,
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
		Notes:        req.Notes,
		NextVisit:    nextVisit,
	}

	if capability, ok := middleware.GetCapabilityFromContext(ctx); ok && capability.HasDoctor() {
		record.DoctorID = &capability.Doctor.ID
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.recordRepo.Create(ctx, tx, record); err != nil {
		u.log.Warnf("Failed to create patient record: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, actorIDFromContext(ctx), entity.AuditActionRecordCreate, "patient_record", fmt.Sprintf("%d", record.ID), map[string]interface{}{
		"mr_number": mrNumber,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.RecordToResponse(record), nil
}
