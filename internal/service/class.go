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

// ClassService handles business logic for classes
type ClassService struct {
	uow       repository.UnitOfWorkInterface
	repo      repository.ClassRepositoryInterface
	schools   repository.SchoolRepositoryInterface
	validator *validator.Validate
}

// NewClassService creates a new class service
func NewClassService(uow repository.UnitOfWorkInterface, repo repository.ClassRepositoryInterface, schools repository.SchoolRepositoryInterface, validator *validator.Validate) *ClassService {
	return &ClassService{
		uow:       uow,
		repo:      repo,
		schools:   schools,
		validator: validator,
	}
}

// CreateClassRequest represents the request to create a class
type CreateClassRequest struct {
	SchoolID uuid.UUID `json:"schoolId" validate:"required"`
	Level    string    `json:"level" validate:"required,max=20" example:"9"`
	Section  string    `json:"section" validate:"required,max=20" example:"A"`
}

// ListBySchool retrieves the classes of a school ordered by level and section
func (s *ClassService) ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]models.Class, error) {
	classes, err := s.repo.ListBySchool(ctx, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}

// Create creates a class in an existing school
func (s *ClassService) Create(ctx context.Context, req *CreateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	class := &models.Class{
		SchoolID: req.SchoolID,
		Level:    req.Level,
		Section:  req.Section,
	}

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		exists, err := s.schools.Exists(ctx, req.SchoolID)
		if err != nil {
			return fmt.Errorf("failed to check school: %w", err)
		}
		if !exists {
			return apperrors.NewValidationError("schoolId", "school does not exist")
		}

		if err := s.repo.Create(ctx, class); err != nil {
			return fmt.Errorf("failed to create class: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return class, nil
}

// Delete removes a class; false when it does not exist
func (s *ClassService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	found := false
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get class: %w", err)
		}
		found = true

		if err := s.repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete class: %w", err)
		}
		return nil
	})
	return found, err
}
