package repository

import (
	"context"

	"hospital-management-system/internal/domain/entity"

	"gorm.io/gorm"
)

type HospitalRepository interface {
	Create(ctx context.Context, db *gorm.DB, hospital *entity.Hospital) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Hospital, error)
	// FindByNameLike returns the first hospital whose name contains the given
	// fragment, case-insensitively, or nil when none matches.
	FindByNameLike(ctx context.Context, db *gorm.DB, name string) (*entity.Hospital, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
