package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eduman-backend/internal/database/models"
	apperrors "eduman-backend/internal/errors"
	"eduman-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LicenseService handles business logic for licenses
type LicenseService struct {
	uow          repository.UnitOfWorkInterface
	repo         repository.LicenseRepositoryInterface
	institutions repository.InstitutionRepositoryInterface
	validator    *validator.Validate
	now          func() time.Time
}

// NewLicenseService creates a new license service
func NewLicenseService(uow repository.UnitOfWorkInterface, repo repository.LicenseRepositoryInterface, institutions repository.InstitutionRepositoryInterface, validator *validator.Validate) *LicenseService {
	return &LicenseService{
		uow:          uow,
		repo:         repo,
		institutions: institutions,
		validator:    validator,
		now:          time.Now,
	}
}

// WithClock replaces the time source used to derive a license status
func (s *LicenseService) WithClock(now func() time.Time) *LicenseService {
	s.now = now
	return s
}

// CreateLicenseRequest represents the request to create a license.
// LicenseKey is generated and Status derived when omitted.
type CreateLicenseRequest struct {
	InstitutionID uuid.UUID             `json:"institutionId" validate:"required"`
	LicenseKey    string                `json:"licenseKey,omitempty" validate:"omitempty,max=100" example:"LIC-2025-NORTH"`
	UserLimit     int                   `json:"userLimit" validate:"gte=0" example:"250"`
	StartDate     models.Date           `json:"startDate" swaggertype:"string" example:"2025-01-01"`
	EndDate       models.Date           `json:"endDate" swaggertype:"string" example:"2025-12-31"`
	IsDemo        bool                  `json:"isDemo"`
	UsedUsers     *int                  `json:"usedUsers,omitempty" validate:"omitempty,gte=0"`
	Type          *string               `json:"type,omitempty" validate:"omitempty,max=50"`
	Status        *models.LicenseStatus `json:"status,omitempty" validate:"omitempty,oneof=active demo expiring passive"`
}

// ListByInstitution retrieves the licenses of an institution, latest end date first
func (s *LicenseService) ListByInstitution(ctx context.Context, institutionID uuid.UUID) ([]models.License, error) {
	licenses, err := s.repo.ListByInstitution(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}
	return licenses, nil
}

// Create creates a license for an existing institution
func (s *LicenseService) Create(ctx context.Context, req *CreateLicenseRequest) (*models.License, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.StartDate.IsZero() {
		return nil, apperrors.NewValidationError("startDate", "start date is required")
	}
	if req.EndDate.IsZero() {
		return nil, apperrors.NewValidationError("endDate", "end date is required")
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	license := &models.License{
		InstitutionID: req.InstitutionID,
		LicenseKey:    strings.TrimSpace(req.LicenseKey),
		UserLimit:     req.UserLimit,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		IsDemo:        req.IsDemo,
		UsedUsers:     req.UsedUsers,
		Type:          req.Type,
		Status:        req.Status,
	}
	if license.LicenseKey == "" {
		license.LicenseKey = GenerateLicenseKey()
	}
	if license.Status == nil {
		status := license.DeriveStatus(models.DateOf(s.now()))
		license.Status = &status
	}

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		exists, err := s.institutions.Exists(ctx, req.InstitutionID)
		if err != nil {
			return fmt.Errorf("failed to check institution: %w", err)
		}
		if !exists {
			return apperrors.NewValidationError("institutionId", "institution does not exist")
		}

		existing, err := s.repo.GetByKey(ctx, license.LicenseKey)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing license: %w", err)
		}
		if existing != nil {
			return apperrors.ErrLicenseExists
		}

		if err := s.repo.Create(ctx, license); err != nil {
			return fmt.Errorf("failed to create license: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return license, nil
}

// Delete removes a license; false when it does not exist
func (s *LicenseService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	found := false
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get license: %w", err)
		}
		found = true

		if err := s.repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete license: %w", err)
		}
		return nil
	})
	return found, err
}

// GenerateLicenseKey returns a random key of the form LIC-XXXX-XXXX-XXXX
func GenerateLicenseKey() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("LIC-%s-%s-%s", raw[0:4], raw[4:8], raw[8:12])
}
