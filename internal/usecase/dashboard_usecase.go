package usecase

import (
	"context"
	"errors"

	"hospital-management-system/internal/converter"
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/delivery/http/middleware"
	"hospital-management-system/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrCapabilityMissing = errors.New("capability not found in context")

// recentLimit is how many recent rows each dashboard shows.
const (
	recentLimit     = 10
	homeRecentLimit = 5
)

type DashboardUsecase interface {
	DoctorDashboard(ctx context.Context) (*dto.DoctorDashboardResponse, error)
	HospitalAdminDashboard(ctx context.Context) (*dto.HospitalAdminDashboardResponse, error)
	AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error)
	HomeDashboard(ctx context.Context) (*dto.HomeDashboardResponse, error)
}

type dashboardUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	recordRepo   repository.PatientRecordRepository
	doctorRepo   repository.DoctorRepository
	hospitalRepo repository.HospitalRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	recordRepo repository.PatientRecordRepository,
	doctorRepo repository.DoctorRepository,
	hospitalRepo repository.HospitalRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		recordRepo:   recordRepo,
		doctorRepo:   doctorRepo,
		hospitalRepo: hospitalRepo,
	}
}

// DoctorDashboard shows the doctor's own patients (deduplicated over records
// they authored) and their most recent records.
func (u *dashboardUsecase) DoctorDashboard(ctx context.Context) (*dto.DoctorDashboardResponse, error) {
	capability, ok := middleware.GetCapabilityFromContext(ctx)
	if !ok || capability.Doctor == nil {
		return nil, ErrCapabilityMissing
	}
	doctorID := capability.Doctor.ID

	patients, err := u.patientRepo.FindByRecordDoctor(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find patients for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	records, err := u.recordRepo.FindRecentByDoctor(ctx, u.db, doctorID, recentLimit)
	if err != nil {
		u.log.Warnf("Failed to find records for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.DoctorDashboardResponse{
		Patients:      converter.PatientsToResponses(patients),
		RecentRecords: converter.RecordsToResponses(records),
	}, nil
}

// HospitalAdminDashboard scopes every query by the admin's own hospital id.
// Nothing here accepts a hospital id from the request, so cross-hospital
// visibility is structurally impossible.
func (u *dashboardUsecase) HospitalAdminDashboard(ctx context.Context) (*dto.HospitalAdminDashboardResponse, error) {
	capability, ok := middleware.GetCapabilityFromContext(ctx)
	if !ok || capability.HospitalAdmin == nil {
		return nil, ErrCapabilityMissing
	}
	hospitalID := capability.HospitalAdmin.HospitalID

	hospital, err := u.hospitalRepo.FindByID(ctx, u.db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital %d: %+v", hospitalID, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	patientCount, err := u.patientRepo.CountByHospital(ctx, u.db, hospitalID)
	if err != nil {
		return nil, err
	}

	doctorCount, err := u.doctorRepo.CountByHospital(ctx, u.db, hospitalID)
	if err != nil {
		return nil, err
	}

	recordCount, err := u.recordRepo.CountByHospital(ctx, u.db, hospitalID)
	if err != nil {
		return nil, err
	}

	recentPatients, err := u.patientRepo.FindRecentByHospital(ctx, u.db, hospitalID, recentLimit)
	if err != nil {
		return nil, err
	}

	recentRecords, err := u.recordRepo.FindRecentByHospital(ctx, u.db, hospitalID, recentLimit)
	if err != nil {
		return nil, err
	}

	return &dto.HospitalAdminDashboardResponse{
		Hospital:       *converter.HospitalToResponse(hospital),
		PatientCount:   patientCount,
		DoctorCount:    doctorCount,
		RecordCount:    recordCount,
		RecentPatients: converter.PatientsToResponses(recentPatients),
		RecentRecords:  converter.RecordsToResponses(recentRecords),
	}, nil
}

// AdminDashboard shows global counts across all hospitals.
func (u *dashboardUsecase) AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	patientCount, err := u.patientRepo.Count(ctx, u.db)
	if err != nil {
		return nil, err
	}

	doctorCount, err := u.doctorRepo.Count(ctx, u.db)
	if err != nil {
		return nil, err
	}

	hospitalCount, err := u.hospitalRepo.Count(ctx, u.db)
	if err != nil {
		return nil, err
	}

	recordCount, err := u.recordRepo.Count(ctx, u.db)
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboardResponse{
		PatientCount:  patientCount,
		DoctorCount:   doctorCount,
		HospitalCount: hospitalCount,
		RecordCount:   recordCount,
	}, nil
}

// HomeDashboard is the landing view for plain users without any capability.
func (u *dashboardUsecase) HomeDashboard(ctx context.Context) (*dto.HomeDashboardResponse, error) {
	patients, err := u.patientRepo.FindRecent(ctx, u.db, homeRecentLimit)
	if err != nil {
		return nil, err
	}

	records, err := u.recordRepo.FindRecent(ctx, u.db, homeRecentLimit)
	if err != nil {
		return nil, err
	}

	return &dto.HomeDashboardResponse{
		RecentPatients: converter.PatientsToResponses(patients),
		RecentRecords:  converter.RecordsToResponses(records),
	}, nil
}
