package repository

import (
	"context"

	"hospital-management-system/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	// FindByMRNumber returns nil, nil when no patient carries the MR number.
	FindByMRNumber(ctx context.Context, db *gorm.DB, mrNumber string) (*entity.Patient, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	// FindByRecordDoctor returns the deduplicated patients that have at least
	// one record authored by the doctor.
	FindByRecordDoctor(ctx context.Context, db *gorm.DB, doctorID uint) ([]entity.Patient, error)
	FindRecentByHospital(ctx context.Context, db *gorm.DB, hospitalID uint, limit int) ([]entity.Patient, error)
	FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]entity.Patient, error)
	CountByHospital(ctx context.Context, db *gorm.DB, hospitalID uint) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
