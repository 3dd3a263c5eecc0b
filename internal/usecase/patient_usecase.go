package usecase

import (
	"context"
	"errors"
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

var (
	ErrPatientNotFound   = errors.New("no records found for the provided MR number")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	// ErrMRNumberExhausted means repeated MR number collisions, which in
	// practice indicates something badly wrong with the randomness source.
	ErrMRNumberExhausted = errors.New("could not allocate a unique MR number")
)

// mrNumberMaxAttempts bounds the collision retry loop.
const mrNumberMaxAttempts = 5

// PatientUsecase registers patients and serves the store's patient views.
// Patient registration creates no login credential: the MR number is the
// patient's only handle afterwards.
type PatientUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
	GetPatientByMRNumber(ctx context.Context, mrNumber string) (*dto.PatientDetailResponse, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	recordRepo   repository.PatientRecordRepository
	hospitalRepo repository.HospitalRepository
	auditService service.AuditService

	// persist writes one patient inside its own transaction. It is a field
	// so the collision retry loop can be exercised without a live database.
	persist func(ctx context.Context, patient *entity.Patient, actorID *uint) error
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	recordRepo repository.PatientRecordRepository,
	hospitalRepo repository.HospitalRepository,
	auditService service.AuditService,
) PatientUsecase {
	u := &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		recordRepo:   recordRepo,
		hospitalRepo: hospitalRepo,
		auditService: auditService,
	}
	u.persist = u.persistPatient
	return u
}

// RegisterPatient inserts the patient with a freshly generated MR number.
// Each attempt runs in its own transaction because a unique-violation aborts
// the surrounding Postgres transaction.
func (u *patientUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	hospital, err := u.hospitalRepo.FindByID(ctx, u.db, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital %d: %+v", req.HospitalID, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	actorID := actorIDFromContext(ctx)

	for attempt := 0; attempt < mrNumberMaxAttempts; attempt++ {
		patient := &entity.Patient{
			MRNumber:      newMRNumber(),
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			DateOfBirth:   dob,
			Gender:        req.Gender,
			BloodGroup:    req.BloodGroup,
			Address:       req.Address,
			ContactNumber: req.ContactNumber,
			Email:         req.Email,
			HospitalID:    req.HospitalID,
		}

		if err := u.persist(ctx, patient, actorID); err != nil {
			if isDuplicateKeyError(err, "mr_number") {
				continue
			}
			// The hospital can vanish between the pre-check and the insert
			if isForeignKeyError(err, "hospital_id") {
				return nil, ErrHospitalNotFound
			}
			u.log.Warnf("Failed to create patient: %+v", err)
			return nil, err
		}

		return converter.PatientToResponse(patient), nil
	}

	u.log.Errorf("Exhausted %d MR number attempts", mrNumberMaxAttempts)
	return nil, ErrMRNumberExhausted
}

func (u *patientUsecase) persistPatient(ctx context.Context, patient *entity.Patient, actorID *uint) error {
	tx := u.db.WithContext(ctx).Begin()

	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		tx.Rollback()
		return err
	}

	if err := u.auditService.LogAction(ctx, tx, actorID, entity.AuditActionPatientRegister, "patient", patient.MRNumber, map[string]interface{}{
		"hospital_id": patient.HospitalID,
	}); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *patientUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetPatientByMRNumber(ctx context.Context, mrNumber string) (*dto.PatientDetailResponse, error) {
	patient, err := u.patientRepo.FindByMRNumber(ctx, u.db, mrNumber)
	if err != nil {
		u.log.Warnf("Failed to find patient by MR number: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	records, err := u.recordRepo.FindByPatientID(ctx, u.db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to load records for patient %d: %+v", patient.ID, err)
		return nil, err
	}

	return &dto.PatientDetailResponse{
		Patient: *converter.PatientToResponse(patient),
		Records: converter.RecordsToResponses(records),
	}, nil
}

// actorIDFromContext returns the acting user's id for audit purposes, or nil
// on unauthenticated routes.
func actorIDFromContext(ctx context.Context) *uint {
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &userID
	}
	return nil
}
