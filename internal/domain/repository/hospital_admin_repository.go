package repository

import (
	"context"

	"hospital-management-system/internal/domain/entity"

	"gorm.io/gorm"
)

type HospitalAdminRepository interface {
	Create(ctx context.Context, db *gorm.DB, admin *entity.HospitalAdmin) error
	// FindByUserID returns nil, nil when the user has no hospital admin row.
	FindByUserID(ctx context.Context, db *gorm.DB, userID uint) (*entity.HospitalAdmin, error)
}
