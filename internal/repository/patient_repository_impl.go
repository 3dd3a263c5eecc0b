package repository

import (
	"context"
	"errors"

	"hospital-management-system/internal/domain/entity"
	domainRepo "hospital-management-system/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByMRNumber(ctx context.Context, db *gorm.DB, mrNumber string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("mr_number = ?", mrNumber).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Order("registration_date DESC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByRecordDoctor(ctx context.Context, db *gorm.DB, doctorID uint) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).
		Distinct("patients.*").
		Joins("JOIN patient_records ON patient_records.patient_id = patients.id").
		Where("patient_records.doctor_id = ?", doctorID).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindRecentByHospital(ctx context.Context, db *gorm.DB, hospitalID uint, limit int) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("registration_date DESC").
		Limit(limit).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Order("registration_date DESC").Limit(limit).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) CountByHospital(ctx context.Context, db *gorm.DB, hospitalID uint) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).
		Where("hospital_id = ?", hospitalID).
		Count(&count).Error
	return count, err
}

func (r *patientRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Count(&count).Error
	return count, err
}
