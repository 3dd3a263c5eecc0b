package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registrationForm struct {
	Username        string `validate:"required,min=3,max=50"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required"`
	UserType        string `validate:"required,oneof=doctor hospital_admin admin"`
	DateOfBirth     string `validate:"omitempty,datetime=2006-01-02"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&registrationForm{
		Username:        "drsmith",
		Email:           "smith@example.com",
		Password:        "s3cretpass",
		ConfirmPassword: "s3cretpass",
		UserType:        "doctor",
		DateOfBirth:     "1980-06-15",
	})
	assert.NoError(t, err)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&registrationForm{
		Username: "ab",
		Email:    "not-an-email",
		Password: "short",
		UserType: "superuser",
	})
	require.Error(t, err)

	errors := cv.FormatValidationErrors(err)
	assert.Equal(t, "Username must be at least 3 characters", errors["Username"])
	assert.Equal(t, "Email must be a valid email address", errors["Email"])
	assert.Equal(t, "Password must be at least 8 characters", errors["Password"])
	assert.Equal(t, "ConfirmPassword is required", errors["ConfirmPassword"])
	assert.Equal(t, "UserType must be one of: doctor hospital_admin admin", errors["UserType"])
}

func TestValidateDatetimeFormat(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&registrationForm{
		Username:        "drsmith",
		Email:           "smith@example.com",
		Password:        "s3cretpass",
		ConfirmPassword: "s3cretpass",
		UserType:        "admin",
		DateOfBirth:     "15/06/1980",
	})
	require.Error(t, err)

	errors := cv.FormatValidationErrors(err)
	assert.Equal(t, "DateOfBirth must be a valid date in format 2006-01-02", errors["DateOfBirth"])
}
