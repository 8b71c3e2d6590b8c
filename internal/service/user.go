package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eduman-backend/internal/auth"
	"eduman-backend/internal/database/models"
	apperrors "eduman-backend/internal/errors"
	"eduman-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	uow          repository.UnitOfWorkInterface
	repo         repository.UserRepositoryInterface
	institutions repository.InstitutionRepositoryInterface
	guard        LicenseGuardInterface
	hasher       auth.PasswordHasher
	validator    *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(
	uow repository.UnitOfWorkInterface,
	repo repository.UserRepositoryInterface,
	institutions repository.InstitutionRepositoryInterface,
	guard LicenseGuardInterface,
	hasher auth.PasswordHasher,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		uow:          uow,
		repo:         repo,
		institutions: institutions,
		guard:        guard,
		hasher:       hasher,
		validator:    validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	FullName      string     `json:"fullName" validate:"required,min=1,max=200" example:"Jane Doe"`
	Email         string     `json:"email" validate:"required,email,max=320" example:"jane.doe@school.edu"`
	Role          string     `json:"role,omitempty" validate:"omitempty,max=100" example:"teacher"`
	InstitutionID *uuid.UUID `json:"institutionId,omitempty"`
	Status        string     `json:"status,omitempty" example:"active"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	FullName      string     `json:"fullName" validate:"required,min=1,max=200"`
	Email         string     `json:"email" validate:"required,email,max=320"`
	Role          string     `json:"role,omitempty" validate:"omitempty,max=100"`
	InstitutionID *uuid.UUID `json:"institutionId,omitempty"`
	Status        string     `json:"status,omitempty"`
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// List retrieves users matching filter
func (s *UserService) List(ctx context.Context, filter repository.UserFilter) ([]models.User, error) {
	users, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Create creates a user with the given password.
// Joining an institution requires its license to admit one more user; the check and
// the insert share one transaction.
func (s *UserService) Create(ctx context.Context, req *CreateUserRequest, password string) (*models.User, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if err := auth.ValidatePassword(password); err != nil {
		return nil, apperrors.NewValidationError("password", err.Error())
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		var policyErr *auth.PasswordPolicyError
		if errors.As(err, &policyErr) {
			return nil, apperrors.NewValidationError("password", policyErr.Error())
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	email := req.Email
	user := &models.User{
		FullName:      req.FullName,
		Email:         email,
		UserName:      email,
		Role:          roleOrDefault(req.Role),
		InstitutionID: req.InstitutionID,
		Status:        status,
		PasswordHash:  hash,
	}

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		if err := s.ensureEmailFree(ctx, email, uuid.Nil); err != nil {
			return err
		}
		if user.InstitutionID != nil {
			if err := s.admit(ctx, *user.InstitutionID); err != nil {
				return err
			}
		}

		if err := s.repo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Update overwrites name, email, role, status and institution; false when the user does not exist.
// Moving to a different institution runs the license check for that institution.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (bool, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return false, fmt.Errorf("validation failed: %w", err)
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return false, err
	}

	found := false
	err = s.uow.Do(ctx, func(ctx context.Context) error {
		user, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get user: %w", err)
		}
		found = true

		email := req.Email
		if email != user.Email {
			if err := s.ensureEmailFree(ctx, email, user.ID); err != nil {
				return err
			}
		}
		if req.InstitutionID != nil && (user.InstitutionID == nil || *user.InstitutionID != *req.InstitutionID) {
			if err := s.admit(ctx, *req.InstitutionID); err != nil {
				return err
			}
		}

		user.FullName = req.FullName
		user.Email = email
		user.UserName = email
		user.Role = roleOrDefault(req.Role)
		user.Status = status
		user.InstitutionID = req.InstitutionID

		if err := s.repo.Update(ctx, user); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
	return found, err
}

// Delete removes a user; false when it does not exist
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	found := false
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get user: %w", err)
		}
		found = true

		if err := s.repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	return found, err
}

// admit checks that the institution exists and its license has room for one more user
func (s *UserService) admit(ctx context.Context, institutionID uuid.UUID) error {
	exists, err := s.institutions.Exists(ctx, institutionID)
	if err != nil {
		return fmt.Errorf("failed to check institution: %w", err)
	}
	if !exists {
		return apperrors.NewValidationError("institutionId", "institution does not exist")
	}

	result, err := s.guard.EnsureUserCanBeCreated(ctx, institutionID)
	if err != nil {
		return fmt.Errorf("failed to check license: %w", err)
	}
	return result.Err()
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string, self uuid.UUID) error {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil && existing.ID != self {
		return apperrors.ErrUserExists
	}
	return nil
}

func parseStatus(s string) (models.UserStatus, error) {
	if strings.TrimSpace(s) == "" {
		return models.UserStatusActive, nil
	}
	status, ok := models.ParseUserStatus(s)
	if !ok {
		return "", apperrors.NewValidationError("status", "status must be active or inactive")
	}
	return status, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func roleOrDefault(role string) string {
	if role = strings.TrimSpace(role); role != "" {
		return role
	}
	return models.DefaultUserRole
}
