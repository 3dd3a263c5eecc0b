package repository

import (
	"context"

	"hospital-management-system/internal/domain/entity"

	"gorm.io/gorm"
)

// PatientRecordRepository is intentionally append-only: there is no update or
// delete method. Visit history is immutable once written.
type PatientRecordRepository interface {
	Create(ctx context.Context, db *gorm.DB, record *entity.PatientRecord) error
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.PatientRecord, error)
	FindRecentByDoctor(ctx context.Context, db *gorm.DB, doctorID uint, limit int) ([]entity.PatientRecord, error)
	FindRecentByHospital(ctx context.Context, db *gorm.DB, hospitalID uint, limit int) ([]entity.PatientRecord, error)
	FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]entity.PatientRecord, error)
	CountByHospital(ctx context.Context, db *gorm.DB, hospitalID uint) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
