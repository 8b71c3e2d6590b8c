package service

import (
	"context"
	"errors"
	"fmt"

	"eduman-backend/internal/database/models"
	apperrors "eduman-backend/internal/errors"
	"eduman-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InstitutionService handles business logic for institutions
type InstitutionService struct {
	uow       repository.UnitOfWorkInterface
	repo      repository.InstitutionRepositoryInterface
	validator *validator.Validate
}

// NewInstitutionService creates a new institution service
func NewInstitutionService(uow repository.UnitOfWorkInterface, repo repository.InstitutionRepositoryInterface, validator *validator.Validate) *InstitutionService {
	return &InstitutionService{
		uow:       uow,
		repo:      repo,
		validator: validator,
	}
}

// CreateInstitutionRequest represents the request to create an institution.
// A new tenant id is generated when TenantID is omitted.
type CreateInstitutionRequest struct {
	Name     string                  `json:"name" validate:"required,min=1,max=200" example:"Northside Education Group"`
	TenantID *uuid.UUID              `json:"tenantId,omitempty"`
	Address  *string                 `json:"address,omitempty" validate:"omitempty,max=500"`
	Type     *models.InstitutionType `json:"type,omitempty" validate:"omitempty,oneof=public private" example:"private"`
}

// UpdateInstitutionRequest represents the request to update an institution
type UpdateInstitutionRequest struct {
	Name    string                  `json:"name" validate:"required,min=1,max=200"`
	Address *string                 `json:"address,omitempty" validate:"omitempty,max=500"`
	Type    *models.InstitutionType `json:"type,omitempty" validate:"omitempty,oneof=public private"`
}

// List retrieves all institutions ordered by name
func (s *InstitutionService) List(ctx context.Context) ([]models.Institution, error) {
	institutions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list institutions: %w", err)
	}
	return institutions, nil
}

// GetByID retrieves an institution by ID
func (s *InstitutionService) GetByID(ctx context.Context, id uuid.UUID) (*models.Institution, error) {
	institution, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("failed to get institution: %w", err)
	}
	return institution, nil
}

// Create creates a new institution
func (s *InstitutionService) Create(ctx context.Context, req *CreateInstitutionRequest) (*models.Institution, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	institution := &models.Institution{
		Name:     req.Name,
		TenantID: uuid.New(),
		Address:  req.Address,
		Type:     req.Type,
	}
	if req.TenantID != nil && *req.TenantID != uuid.Nil {
		institution.TenantID = *req.TenantID
	}

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByTenantID(ctx, institution.TenantID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing institution: %w", err)
		}
		if existing != nil {
			return apperrors.ErrInstitutionExists
		}

		if err := s.repo.Create(ctx, institution); err != nil {
			return fmt.Errorf("failed to create institution: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return institution, nil
}

// Update overwrites name, address and type; false when the institution does not exist
func (s *InstitutionService) Update(ctx context.Context, id uuid.UUID, req *UpdateInstitutionRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, fmt.Errorf("validation failed: %w", err)
	}

	found := false
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		institution, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get institution: %w", err)
		}
		found = true

		institution.Name = req.Name
		institution.Address = req.Address
		institution.Type = req.Type

		if err := s.repo.Update(ctx, institution); err != nil {
			return fmt.Errorf("failed to update institution: %w", err)
		}
		return nil
	})
	return found, err
}

// Delete removes an institution with its schools, classes and licenses; false when it does not exist
func (s *InstitutionService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	found := false
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check institution: %w", err)
		}
		if !exists {
			return nil
		}
		found = true

		if err := s.repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete institution: %w", err)
		}
		return nil
	})
	return found, err
}
