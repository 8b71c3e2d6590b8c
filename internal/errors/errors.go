package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // e.g. "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// License denial reasons reported by the license guard.
const (
	ReasonNoActiveLicense   = "NoActiveLicense"
	ReasonLicenseExpired    = "LicenseExpired"
	ReasonUserLimitExceeded = "UserLimitExceeded"
)

// LicenseDeniedError is returned when an institution's license does not admit a new user.
type LicenseDeniedError struct {
	Reason string
}

func (e *LicenseDeniedError) Error() string {
	switch e.Reason {
	case ReasonNoActiveLicense:
		return "institution has no active license"
	case ReasonLicenseExpired:
		return "institution license is not valid today"
	case ReasonUserLimitExceeded:
		return "institution license user limit reached"
	}
	return fmt.Sprintf("license check failed: %s", e.Reason)
}

// Is matches any LicenseDeniedError with the same reason, or any reason when target's is empty.
func (e *LicenseDeniedError) Is(target error) bool {
	t, ok := target.(*LicenseDeniedError)
	if !ok {
		return false
	}
	return t.Reason == "" || e.Reason == t.Reason
}

// Entity Not Found Errors
var (
	ErrInstitutionNotFound = &NotFoundError{Entity: "institution"}
	ErrSchoolNotFound      = &NotFoundError{Entity: "school"}
	ErrClassNotFound       = &NotFoundError{Entity: "class"}
	ErrLicenseNotFound     = &NotFoundError{Entity: "license"}
	ErrRoleNotFound        = &NotFoundError{Entity: "role"}
	ErrPermissionNotFound  = &NotFoundError{Entity: "permission"}
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrInstitutionExists = &AlreadyExistsError{Entity: "institution", Context: "with this tenant id"}
	ErrLicenseExists     = &AlreadyExistsError{Entity: "license", Context: "with this key"}
	ErrRoleExists        = &AlreadyExistsError{Entity: "role", Context: "with this name"}
	ErrUserExists        = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// License Errors
var (
	ErrNoActiveLicense   = &LicenseDeniedError{Reason: ReasonNoActiveLicense}
	ErrLicenseExpired    = &LicenseDeniedError{Reason: ReasonLicenseExpired}
	ErrUserLimitExceeded = &LicenseDeniedError{Reason: ReasonUserLimitExceeded}
)

// Business Logic Errors
var (
	ErrInvalidDateRange = &ValidationError{Field: "endDate", Message: "end date must not be before start date"}
	ErrInvalidStatus    = errors.New("invalid status")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid token"}
	ErrUserInactive       = &AuthenticationError{Message: "user is inactive"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// AsLicenseDenied returns the LicenseDeniedError wrapped in err, if any.
func AsLicenseDenied(err error) (*LicenseDeniedError, bool) {
	var denied *LicenseDeniedError
	if errors.As(err, &denied) {
		return denied, true
	}
	return nil, false
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewLicenseDeniedError creates a LicenseDeniedError for the given guard reason
func NewLicenseDeniedError(reason string) error {
	return &LicenseDeniedError{Reason: reason}
}
