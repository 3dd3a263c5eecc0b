package service

import (
	"context"
	"testing"

	"hospital-management-system/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	user *entity.User
	err  error
}

func (s *stubUserRepo) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	return nil
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*entity.User, error) {
	return s.user, s.err
}

func (s *stubUserRepo) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.User, error) {
	return s.user, s.err
}

type stubDoctorRepo struct {
	doctor *entity.Doctor
}

func (s *stubDoctorRepo) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return nil
}

func (s *stubDoctorRepo) FindByUserID(ctx context.Context, db *gorm.DB, userID uint) (*entity.Doctor, error) {
	return s.doctor, nil
}

func (s *stubDoctorRepo) CountByHospital(ctx context.Context, db *gorm.DB, hospitalID uint) (int64, error) {
	return 0, nil
}

func (s *stubDoctorRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	return 0, nil
}

type stubAdminRepo struct {
	admin *entity.HospitalAdmin
}

func (s *stubAdminRepo) Create(ctx context.Context, db *gorm.DB, admin *entity.HospitalAdmin) error {
	return nil
}

func (s *stubAdminRepo) FindByUserID(ctx context.Context, db *gorm.DB, userID uint) (*entity.HospitalAdmin, error) {
	return s.admin, nil
}

func TestResolveDerivesDoctorCapability(t *testing.T) {
	svc := NewCapabilityService(nil, logrus.New(),
		&stubUserRepo{user: &entity.User{ID: 1, Username: "drsmith"}},
		&stubDoctorRepo{doctor: &entity.Doctor{ID: 10, UserID: 1}},
		&stubAdminRepo{},
	)

	capability, err := svc.Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, RoleDoctor, capability.Role())
	assert.True(t, capability.HasDoctor())
	assert.False(t, capability.HasHospitalAdmin())
	assert.False(t, capability.HasStaff())
}

func TestResolveDerivesHospitalAdminCapability(t *testing.T) {
	svc := NewCapabilityService(nil, logrus.New(),
		&stubUserRepo{user: &entity.User{ID: 2, Username: "hadmin"}},
		&stubDoctorRepo{},
		&stubAdminRepo{admin: &entity.HospitalAdmin{ID: 20, UserID: 2, HospitalID: 5}},
	)

	capability, err := svc.Resolve(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, RoleHospitalAdmin, capability.Role())
	assert.True(t, capability.HasHospitalAdmin())
}

func TestResolveDerivesStaffCapability(t *testing.T) {
	svc := NewCapabilityService(nil, logrus.New(),
		&stubUserRepo{user: &entity.User{ID: 3, Username: "root", IsStaff: true}},
		&stubDoctorRepo{},
		&stubAdminRepo{},
	)

	capability, err := svc.Resolve(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, RoleStaff, capability.Role())
	assert.True(t, capability.HasStaff())
}

func TestResolvePlainUserHasNoCapabilities(t *testing.T) {
	svc := NewCapabilityService(nil, logrus.New(),
		&stubUserRepo{user: &entity.User{ID: 4, Username: "visitor"}},
		&stubDoctorRepo{},
		&stubAdminRepo{},
	)

	capability, err := svc.Resolve(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, RolePlainUser, capability.Role())
	assert.False(t, capability.HasDoctor())
	assert.False(t, capability.HasHospitalAdmin())
	assert.False(t, capability.HasStaff())
}

func TestResolveMissingUser(t *testing.T) {
	svc := NewCapabilityService(nil, logrus.New(),
		&stubUserRepo{err: gorm.ErrRecordNotFound},
		&stubDoctorRepo{},
		&stubAdminRepo{},
	)

	_, err := svc.Resolve(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// Doctor capability wins over the staff flag when a user has both.
func TestRolePrecedence(t *testing.T) {
	c := &Capability{
		User:   &entity.User{ID: 1, IsStaff: true},
		Doctor: &entity.Doctor{ID: 1, UserID: 1},
	}
	assert.Equal(t, RoleDoctor, c.Role())

	c = &Capability{
		User:          &entity.User{ID: 1, IsStaff: true},
		HospitalAdmin: &entity.HospitalAdmin{ID: 1, UserID: 1},
	}
	assert.Equal(t, RoleHospitalAdmin, c.Role())
}
