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

// SchoolService handles business logic for schools
type SchoolService struct {
	uow          repository.UnitOfWorkInterface
	repo         repository.SchoolRepositoryInterface
	institutions repository.InstitutionRepositoryInterface
	validator    *validator.Validate
}

// NewSchoolService creates a new school service
func NewSchoolService(uow repository.UnitOfWorkInterface, repo repository.SchoolRepositoryInterface, institutions repository.InstitutionRepositoryInterface, validator *validator.Validate) *SchoolService {
	return &SchoolService{
		uow:          uow,
		repo:         repo,
		institutions: institutions,
		validator:    validator,
	}
}

// CreateSchoolRequest represents the request to create a school
type CreateSchoolRequest struct {
	InstitutionID uuid.UUID `json:"institutionId" validate:"required"`
	Name          string    `json:"name" validate:"required,min=1,max=200" example:"Riverside Primary"`
	Address       *string   `json:"address,omitempty" validate:"omitempty,max=500"`
	BranchCount   *int      `json:"branchCount,omitempty" validate:"omitempty,gte=0"`
}

// UpdateSchoolRequest represents the request to update a school
type UpdateSchoolRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
	BranchCount *int    `json:"branchCount,omitempty" validate:"omitempty,gte=0"`
}

// ListByInstitution retrieves the schools of an institution ordered by name
func (s *SchoolService) ListByInstitution(ctx context.Context, institutionID uuid.UUID) ([]models.School, error) {
	schools, err := s.repo.ListByInstitution(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}
	return schools, nil
}

// GetByID retrieves a school by ID
func (s *SchoolService) GetByID(ctx context.Context, id uuid.UUID) (*models.School, error) {
	school, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("failed to get school: %w", err)
	}
	return school, nil
}

// Create creates a school under an existing institution
func (s *SchoolService) Create(ctx context.Context, req *CreateSchoolRequest) (*models.School, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	school := &models.School{
		InstitutionID: req.InstitutionID,
		Name:          req.Name,
		Address:       req.Address,
		BranchCount:   req.BranchCount,
	}

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		exists, err := s.institutions.Exists(ctx, req.InstitutionID)
		if err != nil {
			return fmt.Errorf("failed to check institution: %w", err)
		}
		if !exists {
			return apperrors.NewValidationError("institutionId", "institution does not exist")
		}

		if err := s.repo.Create(ctx, school); err != nil {
			return fmt.Errorf("failed to create school: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return school, nil
}

// Update overwrites name, address and branch count; false when the school does not exist
func (s *SchoolService) Update(ctx context.Context, id uuid.UUID, req *UpdateSchoolRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, fmt.Errorf("validation failed: %w", err)
	}

	found := false
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		school, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get school: %w", err)
		}
		found = true

		school.Name = req.Name
		school.Address = req.Address
		school.BranchCount = req.BranchCount

		if err := s.repo.Update(ctx, school); err != nil {
			return fmt.Errorf("failed to update school: %w", err)
		}
		return nil
	})
	return found, err
}

// Delete removes a school and its classes; false when it does not exist
func (s *SchoolService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	found := false
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check school: %w", err)
		}
		if !exists {
			return nil
		}
		found = true

		if err := s.repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete school: %w", err)
		}
		return nil
	})
	return found, err
}
