package usecase

import (
	"context"
	"errors"
	"fmt"

	"hospital-management-system/internal/converter"
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/domain/entity"
	"hospital-management-system/internal/domain/repository"
	"hospital-management-system/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPasswordMismatch      = errors.New("passwords do not match")
	ErrUsernameExists        = errors.New("username already exists")
	ErrClinicRegNumberExists = errors.New("clinic registration number already exists")
	ErrClinicNotFound        = errors.New("clinic not found")
	ErrHospitalNotFound      = errors.New("hospital not found")
)

// RegistrationUsecase covers the credential-creating registration workflows.
// Each operation creates the User first, then the role entity linked to it,
// inside one transaction: a user without its role row is never observable.
// Patient registration is separate (PatientUsecase) and creates no credential.
type RegistrationUsecase interface {
	RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	RegisterHospital(ctx context.Context, req *dto.RegisterHospitalRequest) (*dto.HospitalResponse, error)
	RegisterClinic(ctx context.Context, req *dto.RegisterClinicRequest) (*dto.ClinicResponse, error)
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error)
	RegisterHospitalAdmin(ctx context.Context, req *dto.RegisterHospitalAdminRequest) (*dto.HospitalAdminResponse, error)
}

type registrationUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
	clinicRepo   repository.ClinicRepository
	doctorRepo   repository.DoctorRepository
	adminRepo    repository.HospitalAdminRepository
	auditService service.AuditService
}

func NewRegistrationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	clinicRepo repository.ClinicRepository,
	doctorRepo repository.DoctorRepository,
	adminRepo repository.HospitalAdminRepository,
	auditService service.AuditService,
) RegistrationUsecase {
	return &registrationUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
		clinicRepo:   clinicRepo,
		doctorRepo:   doctorRepo,
		adminRepo:    adminRepo,
		auditService: auditService,
	}
}

// createUser hashes the password and inserts the credential row. Username
// uniqueness rides on the DB constraint so concurrent registrations cannot
// race past an application-level pre-check.
func (u *registrationUsecase) createUser(ctx context.Context, tx *gorm.DB, username, password, email, firstName, lastName string, isStaff bool) (*entity.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username:  username,
		Password:  string(hashedPassword),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		IsStaff:   isStaff,
		IsActive:  true,
	}

	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return user, nil
}

func (u *registrationUsecase) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.createUser(ctx, tx, req.Username, req.Password, req.Email, req.FirstName, req.LastName, false)
	if err != nil {
		return nil, err
	}

	userID := user.ID
	if err := u.auditService.LogAction(ctx, tx, &userID, entity.AuditActionUserRegister, "user", user.Username, nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user, string(service.RolePlainUser)), nil
}

func (u *registrationUsecase) RegisterHospital(ctx context.Context, req *dto.RegisterHospitalRequest) (*dto.HospitalResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.createUser(ctx, tx, req.Username, req.Password, req.Email, req.Name, "", false)
	if err != nil {
		return nil, err
	}

	hospital := &entity.Hospital{
		UserID:             &user.ID,
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		HospitalType:       req.HospitalType,
		StreetAddress:      req.StreetAddress,
		City:               req.City,
		State:              req.State,
		PostalCode:         req.PostalCode,
		Country:            req.Country,
		ContactPersonName:  req.ContactPersonName,
		Designation:        req.Designation,
		ContactNumber:      req.ContactNumber,
		Email:              req.Email,
	}
	if req.AlternateContact != "" {
		hospital.AlternateContact = &req.AlternateContact
	}
	if req.FaxNumber != "" {
		hospital.FaxNumber = &req.FaxNumber
	}

	if err := u.hospitalRepo.Create(ctx, tx, hospital); err != nil {
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	userID := user.ID
	if err := u.auditService.LogAction(ctx, tx, &userID, entity.AuditActionHospitalRegister, "hospital", hospital.Name, nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

// RegisterClinic resolves the owning hospital by case-insensitive substring
// match on the supplied name, auto-creating a placeholder hospital when
// nothing matches. This heuristic can attach a clinic to the wrong hospital
// for ambiguous names; clinics can be re-homed later by an operator.
func (u *registrationUsecase) RegisterClinic(ctx context.Context, req *dto.RegisterClinicRequest) (*dto.ClinicResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByNameLike(ctx, tx, req.HospitalName)
	if err != nil {
		u.log.Warnf("Failed to resolve hospital by name: %+v", err)
		return nil, err
	}
	if hospital == nil {
		hospital = &entity.Hospital{
			Name:          req.HospitalName,
			ContactNumber: entity.PlaceholderContactNumber,
			Email:         entity.PlaceholderEmail,
		}
		if err := u.hospitalRepo.Create(ctx, tx, hospital); err != nil {
			u.log.Warnf("Failed to create placeholder hospital: %+v", err)
			return nil, err
		}
	}

	clinic := &entity.Clinic{
		Name:               req.Name,
		ClinicType:         req.ClinicType,
		RegistrationNumber: req.RegistrationNumber,
		LicenseNumber:      req.LicenseNumber,
		EstablishmentYear:  req.EstablishmentYear,
		HospitalID:         hospital.ID,
		Specialization:     req.Specialization,
		Email:              req.Email,
		ContactNumber:      req.ContactNumber,
		StreetAddress:      req.StreetAddress,
		City:               req.City,
		State:              req.State,
		PostalCode:         req.PostalCode,
		Country:            req.Country,
		OwnerName:          req.OwnerName,
		CNICNumber:         req.CNICNumber,
		Designation:        req.Designation,
		OwnerMobile:        req.OwnerMobile,
		OwnerEmail:         req.OwnerEmail,
	}
	if req.AlternateNumber != "" {
		clinic.AlternateNumber = &req.AlternateNumber
	}
	if req.WhatsappNumber != "" {
		clinic.WhatsappNumber = &req.WhatsappNumber
	}
	if req.Website != "" {
		clinic.Website = &req.Website
	}

	if err := u.clinicRepo.Create(ctx, tx, clinic); err != nil {
		if isDuplicateKeyError(err, "registration_number") {
			return nil, ErrClinicRegNumberExists
		}
		u.log.Warnf("Failed to create clinic: %+v", err)
		return nil, err
	}

	// Clinic operators log in through the staff area
	user, err := u.createUser(ctx, tx, req.Username, req.Password, req.Email, req.Name, "", true)
	if err != nil {
		return nil, err
	}

	userID := user.ID
	if err := u.auditService.LogAction(ctx, tx, &userID, entity.AuditActionClinicRegister, "clinic", clinic.Name, map[string]interface{}{
		"hospital_id": hospital.ID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	clinic.Hospital = hospital
	return converter.ClinicToResponse(clinic), nil
}

func (u *registrationUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if req.ClinicID != nil {
		clinic, err := u.clinicRepo.FindByID(ctx, tx, *req.ClinicID)
		if err != nil {
			u.log.Warnf("Failed to find clinic %d: %+v", *req.ClinicID, err)
			return nil, err
		}
		if clinic == nil {
			return nil, ErrClinicNotFound
		}
	}

	user, err := u.createUser(ctx, tx, req.Username, req.Password, req.Email, req.FirstName, req.LastName, false)
	if err != nil {
		return nil, err
	}

	doctor := &entity.Doctor{
		UserID:         user.ID,
		ClinicID:       req.ClinicID,
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
		ContactNumber:  req.ContactNumber,
	}

	if err := u.doctorRepo.Create(ctx, tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	userID := user.ID
	if err := u.auditService.LogAction(ctx, tx, &userID, entity.AuditActionDoctorRegister, "doctor", fmt.Sprintf("%d", doctor.ID), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor, user), nil
}

func (u *registrationUsecase) RegisterHospitalAdmin(ctx context.Context, req *dto.RegisterHospitalAdminRequest) (*dto.HospitalAdminResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(ctx, tx, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital %d: %+v", req.HospitalID, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	user, err := u.createUser(ctx, tx, req.Username, req.Password, req.Email, req.FirstName, req.LastName, false)
	if err != nil {
		return nil, err
	}

	admin := &entity.HospitalAdmin{
		UserID:        user.ID,
		HospitalID:    req.HospitalID,
		Position:      req.Position,
		ContactNumber: req.ContactNumber,
	}

	if err := u.adminRepo.Create(ctx, tx, admin); err != nil {
		u.log.Warnf("Failed to create hospital admin: %+v", err)
		return nil, err
	}

	userID := user.ID
	if err := u.auditService.LogAction(ctx, tx, &userID, entity.AuditActionHospitalAdminRegister, "hospital_admin", fmt.Sprintf("%d", admin.ID), map[string]interface{}{
		"hospital_id": req.HospitalID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HospitalAdminToResponse(admin, user), nil
}
