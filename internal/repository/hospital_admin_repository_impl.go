package repository

import (
	"context"
	"errors"

	"hospital-management-system/internal/domain/entity"
	domainRepo "hospital-management-system/internal/domain/repository"

	"gorm.io/gorm"
)

type hospitalAdminRepository struct{}

func NewHospitalAdminRepository() domainRepo.HospitalAdminRepository {
	return &hospitalAdminRepository{}
}

func (r *hospitalAdminRepository) Create(ctx context.Context, db *gorm.DB, admin *entity.HospitalAdmin) error {
	return db.WithContext(ctx).Create(admin).Error
}

func (r *hospitalAdminRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uint) (*entity.HospitalAdmin, error) {
	var admin entity.HospitalAdmin
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
