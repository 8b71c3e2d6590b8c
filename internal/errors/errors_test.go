package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "school"}
		assert.Equal(t, "school not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "school"}
		err2 := &NotFoundError{Entity: "school"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrSchoolNotFound, ErrClassNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("delete institution: %w", ErrInstitutionNotFound)
		assert.True(t, errors.Is(wrapped, ErrInstitutionNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrInstitutionNotFound))
		assert.False(t, IsNotFound(ErrUserExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "user already exists with this email", ErrUserExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "role"}
		assert.Equal(t, "role already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(fmt.Errorf("create: %w", ErrRoleExists)))
		assert.False(t, IsAlreadyExists(ErrRoleNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrInvalidDateRange))
		assert.False(t, IsValidation(ErrSchoolNotFound))
	})
}

func TestLicenseDeniedError(t *testing.T) {
	t.Run("reason specific messages", func(t *testing.T) {
		assert.Equal(t, "institution has no active license", ErrNoActiveLicense.Error())
		assert.Equal(t, "institution license is not valid today", ErrLicenseExpired.Error())
		assert.Equal(t, "institution license user limit reached", ErrUserLimitExceeded.Error())
		assert.Equal(t, "license check failed: Other", NewLicenseDeniedError("Other").Error())
	})

	t.Run("errors.Is matches by reason", func(t *testing.T) {
		err := fmt.Errorf("create user: %w", NewLicenseDeniedError(ReasonLicenseExpired))
		assert.True(t, errors.Is(err, ErrLicenseExpired))
		assert.False(t, errors.Is(err, ErrUserLimitExceeded))
		assert.True(t, errors.Is(err, &LicenseDeniedError{}))
	})

	t.Run("AsLicenseDenied", func(t *testing.T) {
		denied, ok := AsLicenseDenied(fmt.Errorf("wrapped: %w", ErrUserLimitExceeded))
		assert.True(t, ok)
		assert.Equal(t, ReasonUserLimitExceeded, denied.Reason)

		_, ok = AsLicenseDenied(ErrUserNotFound)
		assert.False(t, ok)
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("IsAuthentication", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(NewAuthenticationError("expired")))
		assert.False(t, IsAuthentication(ErrInvalidStatus))
	})

	t.Run("IsConfiguration", func(t *testing.T) {
		assert.True(t, IsConfiguration(NewConfigurationError("JWT_SECRET missing")))
		assert.False(t, IsConfiguration(ErrInvalidToken))
	})

	t.Run("constructors", func(t *testing.T) {
		assert.True(t, IsNotFound(NewNotFoundError("widget")))
		assert.True(t, IsAlreadyExists(NewAlreadyExistsError("widget", "")))
	})
}
