package repository

import (
	"context"

	"hospital-management-system/internal/domain/entity"
	domainRepo "hospital-management-system/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRecordRepository struct{}

func NewPatientRecordRepository() domainRepo.PatientRecordRepository {
	return &patientRecordRepository{}
}

func (r *patientRecordRepository) Create(ctx context.Context, db *gorm.DB, record *entity.PatientRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *patientRecordRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.PatientRecord, error) {
	var records []entity.PatientRecord
	err := db.WithContext(ctx).
		Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("visit_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *patientRecordRepository) FindRecentByDoctor(ctx context.Context, db *gorm.DB, doctorID uint, limit int) ([]entity.PatientRecord, error) {
	var records []entity.PatientRecord
	err := db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("visit_date DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *patientRecordRepository) FindRecentByHospital(ctx context.Context, db *gorm.DB, hospitalID uint, limit int) ([]entity.PatientRecord, error) {
	var records []entity.PatientRecord
	err := db.WithContext(ctx).
		Preload("Patient").
		Joins("JOIN patients ON patients.id = patient_records.patient_id").
		Where("patients.hospital_id = ?", hospitalID).
		Order("patient_records.visit_date DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *patientRecordRepository) FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]entity.PatientRecord, error) {
	var records []entity.PatientRecord
	err := db.WithContext(ctx).
		Preload("Patient").
		Order("visit_date DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *patientRecordRepository) CountByHospital(ctx context.Context, db *gorm.DB, hospitalID uint) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.PatientRecord{}).
		Joins("JOIN patients ON patients.id = patient_records.patient_id").
		Where("patients.hospital_id = ?", hospitalID).
		Count(&count).Error
	return count, err
}

func (r *patientRecordRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.PatientRecord{}).Count(&count).Error
	return count, err
}
