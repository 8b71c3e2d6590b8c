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

// RoleService handles business logic for roles and their permission sets
type RoleService struct {
	uow         repository.UnitOfWorkInterface
	repo        repository.RoleRepositoryInterface
	permissions repository.PermissionRepositoryInterface
	validator   *validator.Validate
}

// NewRoleService creates a new role service
func NewRoleService(uow repository.UnitOfWorkInterface, repo repository.RoleRepositoryInterface, permissions repository.PermissionRepositoryInterface, validator *validator.Validate) *RoleService {
	return &RoleService{
		uow:         uow,
		repo:        repo,
		permissions: permissions,
		validator:   validator,
	}
}

// CreateRoleRequest represents the request to create a role
type CreateRoleRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100" example:"teacher"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// UpdateRoleRequest represents the request to update a role
type UpdateRoleRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// ReplacePermissionsRequest carries the complete new permission set of a role
type ReplacePermissionsRequest struct {
	Permissions []string `json:"permissions" example:"School.Read,Class.Read"`
}

// List retrieves all roles ordered by name
func (s *RoleService) List(ctx context.Context) ([]models.Role, error) {
	roles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

// GetByID retrieves a role by ID
func (s *RoleService) GetByID(ctx context.Context, id uuid.UUID) (*models.Role, error) {
	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return role, nil
}

// Create creates a role with a unique name
func (s *RoleService) Create(ctx context.Context, req *CreateRoleRequest) (*models.Role, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := &models.Role{Name: req.Name, Description: req.Description}
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		if err := s.ensureNameFree(ctx, req.Name, uuid.Nil); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, role); err != nil {
			return fmt.Errorf("failed to create role: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return role, nil
}

// Update overwrites name and description; false when the role does not exist
func (s *RoleService) Update(ctx context.Context, id uuid.UUID, req *UpdateRoleRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, fmt.Errorf("validation failed: %w", err)
	}

	found := false
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		role, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get role: %w", err)
		}
		found = true

		if role.Name != req.Name {
			if err := s.ensureNameFree(ctx, req.Name, role.ID); err != nil {
				return err
			}
		}
		role.Name = req.Name
		role.Description = req.Description

		if err := s.repo.Update(ctx, role); err != nil {
			return fmt.Errorf("failed to update role: %w", err)
		}
		return nil
	})
	return found, err
}

// Delete removes a role and its permission links; false when it does not exist
func (s *RoleService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	found := false
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get role: %w", err)
		}
		found = true

		if err := s.repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete role: %w", err)
		}
		return nil
	})
	return found, err
}

// GetPermissions returns the sorted permission names of a role
func (s *RoleService) GetPermissions(ctx context.Context, id uuid.UUID) ([]string, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	names, err := s.repo.PermissionNames(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get role permissions: %w", err)
	}
	return names, nil
}

// ReplacePermissions makes names the role's complete permission set.
// Unknown names are dropped. False when the role does not exist.
func (s *RoleService) ReplacePermissions(ctx context.Context, id uuid.UUID, names []string) (bool, error) {
	found := false
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get role: %w", err)
		}
		found = true

		permissions, err := s.permissions.GetByNames(ctx, names)
		if err != nil {
			return fmt.Errorf("failed to resolve permissions: %w", err)
		}
		ids := make([]uuid.UUID, len(permissions))
		for i, p := range permissions {
			ids[i] = p.ID
		}

		if err := s.repo.ReplacePermissions(ctx, id, ids); err != nil {
			return fmt.Errorf("failed to replace role permissions: %w", err)
		}
		return nil
	})
	return found, err
}

func (s *RoleService) ensureNameFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.repo.GetByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing role: %w", err)
	}
	if existing != nil && existing.ID != self {
		return apperrors.ErrRoleExists
	}
	return nil
}

// PermissionService exposes the permission catalogue
type PermissionService struct {
	repo repository.PermissionRepositoryInterface
}

// NewPermissionService creates a new permission service
func NewPermissionService(repo repository.PermissionRepositoryInterface) *PermissionService {
	return &PermissionService{repo: repo}
}

// List retrieves all permissions ordered by name
func (s *PermissionService) List(ctx context.Context) ([]models.Permission, error) {
	permissions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	return permissions, nil
}
