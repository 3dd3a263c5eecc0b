package repository

import (
	"context"

	"hospital-management-system/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	// FindByUserID returns nil, nil when the user has no doctor row.
	FindByUserID(ctx context.Context, db *gorm.DB, userID uint) (*entity.Doctor, error)
	// CountByHospital counts doctors attached to the hospital through a clinic.
	CountByHospital(ctx context.Context, db *gorm.DB, hospitalID uint) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
