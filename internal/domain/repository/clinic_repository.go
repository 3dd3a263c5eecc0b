package repository

import (
	"context"

	"hospital-management-system/internal/domain/entity"

	"gorm.io/gorm"
)

type ClinicRepository interface {
	Create(ctx context.Context, db *gorm.DB, clinic *entity.Clinic) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Clinic, error)
}
