package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubHospitalFinder struct {
	hospital *entity.Hospital
}

func (s *stubHospitalFinder) Create(ctx context.Context, db *gorm.DB, hospital *entity.Hospital) error {
	return nil
}

func (s *stubHospitalFinder) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Hospital, error) {
	return s.hospital, nil
}

func (s *stubHospitalFinder) FindByNameLike(ctx context.Context, db *gorm.DB, name string) (*entity.Hospital, error) {
	return s.hospital, nil
}

func (s *stubHospitalFinder) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	return 0, nil
}

func newRegisterPatientRequest() *dto.RegisterPatientRequest {
	return &dto.RegisterPatientRequest{
		FirstName:     "Amina",
		LastName:      "Khan",
		DateOfBirth:   "1990-04-12",
		Gender:        "F",
		Address:       "12 Canal Road",
		ContactNumber: "03001234567",
		HospitalID:    1,
	}
}

func mrNumberTakenError() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "patients_mr_number_key"}
}

func newTestPatientUsecase(persist func(ctx context.Context, patient *entity.Patient, actorID *uint) error) *patientUsecase {
	log := logrus.New()
	u := &patientUsecase{
		log:          log,
		hospitalRepo: &stubHospitalFinder{hospital: &entity.Hospital{ID: 1, Name: "City Hospital"}},
	}
	u.persist = persist
	return u
}

func TestRegisterPatientRetriesOnMRNumberCollision(t *testing.T) {
	var seen []string
	failures := 2
	u := newTestPatientUsecase(func(ctx context.Context, patient *entity.Patient, actorID *uint) error {
		seen = append(seen, patient.MRNumber)
		if len(seen) <= failures {
			return mrNumberTakenError()
		}
		return nil
	})

	res, err := u.RegisterPatient(context.Background(), newRegisterPatientRequest())
	require.NoError(t, err)
	require.Len(t, seen, failures+1)

	// Every attempt must draw a fresh MR number, and the response carries
	// the one that finally stuck.
	assert.NotEqual(t, seen[0], seen[1])
	assert.NotEqual(t, seen[1], seen[2])
	assert.Equal(t, seen[2], res.MRNumber)
}

func TestRegisterPatientGivesUpAfterMaxAttempts(t *testing.T) {
	attempts := 0
	u := newTestPatientUsecase(func(ctx context.Context, patient *entity.Patient, actorID *uint) error {
		attempts++
		return mrNumberTakenError()
	})

	res, err := u.RegisterPatient(context.Background(), newRegisterPatientRequest())
	assert.ErrorIs(t, err, ErrMRNumberExhausted)
	assert.Nil(t, res)
	assert.Equal(t, mrNumberMaxAttempts, attempts)
}

func TestRegisterPatientMapsHospitalForeignKeyViolation(t *testing.T) {
	attempts := 0
	u := newTestPatientUsecase(func(ctx context.Context, patient *entity.Patient, actorID *uint) error {
		attempts++
		return &pgconn.PgError{Code: "23503", ConstraintName: "patients_hospital_id_fkey"}
	})

	res, err := u.RegisterPatient(context.Background(), newRegisterPatientRequest())
	assert.ErrorIs(t, err, ErrHospitalNotFound)
	assert.Nil(t, res)
	assert.Equal(t, 1, attempts)
}

func TestRegisterPatientPropagatesUnexpectedErrors(t *testing.T) {
	boom := errors.New("connection reset")
	attempts := 0
	u := newTestPatientUsecase(func(ctx context.Context, patient *entity.Patient, actorID *uint) error {
		attempts++
		return boom
	})

	res, err := u.RegisterPatient(context.Background(), newRegisterPatientRequest())
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res)
	assert.Equal(t, 1, attempts)
}

func TestRegisterPatientRejectsBadDateOfBirth(t *testing.T) {
	u := newTestPatientUsecase(func(ctx context.Context, patient *entity.Patient, actorID *uint) error {
		t.Fatal("persist must not run when the date is invalid")
		return nil
	})

	req := newRegisterPatientRequest()
	req.DateOfBirth = "12-04-1990"

	res, err := u.RegisterPatient(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
	assert.Nil(t, res)
}
