package service

import (
	"context"
	"errors"

	"hospital-management-system/internal/domain/entity"
	"hospital-management-system/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// Role is derived from linked rows and flags, never stored. The constants
// match the user_type values accepted by the login endpoints.
type Role string

const (
	RoleDoctor        Role = "doctor"
	RoleHospitalAdmin Role = "hospital_admin"
	RoleStaff         Role = "admin"
	RolePlainUser     Role = "user"
)

// Capability holds what a user actually is, computed freshly from the store
// on each authorization check. Doctor and HospitalAdmin may both be set when
// the user carries both rows; Role() decides which one wins. IsStaff comes
// from the user row itself.
type Capability struct {
	User          *entity.User
	Doctor        *entity.Doctor
	HospitalAdmin *entity.HospitalAdmin
}

// Role reports the strongest capability. Precedence is doctor, then hospital
// admin, then staff, matching how the dashboards route users.
func (c *Capability) Role() Role {
	switch {
	case c.Doctor != nil:
		return RoleDoctor
	case c.HospitalAdmin != nil:
		return RoleHospitalAdmin
	case c.User != nil && c.User.IsStaff:
		return RoleStaff
	default:
		return RolePlainUser
	}
}

func (c *Capability) HasDoctor() bool        { return c.Doctor != nil }
func (c *Capability) HasHospitalAdmin() bool { return c.HospitalAdmin != nil }
func (c *Capability) HasStaff() bool         { return c.User != nil && c.User.IsStaff }

// CapabilityService resolves the capability union for a user id. Callers must
// not cache the result beyond the request that asked for it.
type CapabilityService interface {
	Resolve(ctx context.Context, userID uint) (*Capability, error)
}

type capabilityService struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	doctorRepo repository.DoctorRepository
	adminRepo  repository.HospitalAdminRepository
}

func NewCapabilityService(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	adminRepo repository.HospitalAdminRepository,
) CapabilityService {
	return &capabilityService{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		doctorRepo: doctorRepo,
		adminRepo:  adminRepo,
	}
}

func (s *capabilityService) Resolve(ctx context.Context, userID uint) (*Capability, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.log.Warnf("Failed to find user %d: %+v", userID, err)
		return nil, err
	}

	doctor, err := s.doctorRepo.FindByUserID(ctx, s.db, userID)
	if err != nil {
		s.log.Warnf("Failed to find doctor row for user %d: %+v", userID, err)
		return nil, err
	}

	admin, err := s.adminRepo.FindByUserID(ctx, s.db, userID)
	if err != nil {
		s.log.Warnf("Failed to find hospital admin row for user %d: %+v", userID, err)
		return nil, err
	}

	return &Capability{
		User:          user,
		Doctor:        doctor,
		HospitalAdmin: admin,
	}, nil
}
