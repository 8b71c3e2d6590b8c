package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "eduman-backend/internal/errors"
	"eduman-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Email string `validate:"email"`
	}
	validationErr := validator.New().Struct(payload{Email: "nope"})
	require.Error(t, validationErr)

	testCases := []struct {
		name   string
		err    error
		status int
		title  string
	}{
		{"not found", apperrors.ErrSchoolNotFound, http.StatusNotFound, TitleNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrRoleNotFound), http.StatusNotFound, TitleNotFound},
		{"validator errors", fmt.Errorf("validation failed: %w", validationErr), http.StatusBadRequest, TitleValidationFailed},
		{"domain validation", apperrors.NewValidationError("institutionId", "institution does not exist"), http.StatusBadRequest, TitleValidationFailed},
		{"date range", apperrors.ErrInvalidDateRange, http.StatusBadRequest, TitleValidationFailed},
		{"conflict", apperrors.ErrUserExists, http.StatusConflict, TitleConflict},
		{"no license", apperrors.ErrNoActiveLicense, http.StatusUnprocessableEntity, apperrors.ReasonNoActiveLicense},
		{"expired license", apperrors.ErrLicenseExpired, http.StatusForbidden, apperrors.ReasonLicenseExpired},
		{"quota", fmt.Errorf("create user: %w", apperrors.ErrUserLimitExceeded), http.StatusConflict, apperrors.ReasonUserLimitExceeded},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, TitleInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, recorder := testutils.CreateTestGinContext()
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tc.err)

			assert.Equal(t, tc.status, recorder.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tc.title, body.Title)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestRespondErrorValidationDetails(t *testing.T) {
	type payload struct {
		FullName string `validate:"required"`
		Email    string `validate:"required,email"`
	}
	err := validator.New().Struct(payload{Email: "nope"})

	c, recorder := testutils.CreateTestGinContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	respondError(c, fmt.Errorf("validation failed: %w", err))

	var body struct {
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{
		"fullName": "is required",
		"email":    "must be a valid email address",
	}, body.Details)
}
