package repository

import (
	"context"

	"eduman-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UnitOfWorkInterface defines the transactional boundary used by services
type UnitOfWorkInterface interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// InstitutionRepositoryInterface defines the interface for institution repository operations
type InstitutionRepositoryInterface interface {
	Create(ctx context.Context, institution *models.Institution) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Institution, error)
	GetByTenantID(ctx context.Context, tenantID uuid.UUID) (*models.Institution, error)
	List(ctx context.Context) ([]models.Institution, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, institution *models.Institution) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// SchoolRepositoryInterface defines the interface for school repository operations
type SchoolRepositoryInterface interface {
	Create(ctx context.Context, school *models.School) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.School, error)
	ListByInstitution(ctx context.Context, institutionID uuid.UUID) ([]models.School, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, school *models.School) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// ClassRepositoryInterface defines the interface for class repository operations
type ClassRepositoryInterface interface {
	Create(ctx context.Context, class *models.Class) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Class, error)
	ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]models.Class, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// LicenseRepositoryInterface defines the interface for license repository operations
type LicenseRepositoryInterface interface {
	Create(ctx context.Context, license *models.License) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.License, error)
	GetByKey(ctx context.Context, key string) (*models.License, error)
	ListByInstitution(ctx context.Context, institutionID uuid.UUID) ([]models.License, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// RoleRepositoryInterface defines the interface for role repository operations
type RoleRepositoryInterface interface {
	Create(ctx context.Context, role *models.Role) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Role, error)
	GetByName(ctx context.Context, name string) (*models.Role, error)
	List(ctx context.Context) ([]models.Role, error)
	Update(ctx context.Context, role *models.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
	PermissionNames(ctx context.Context, roleID uuid.UUID) ([]string, error)
	ReplacePermissions(ctx context.Context, roleID uuid.UUID, permissionIDs []uuid.UUID) error
}

// PermissionRepositoryInterface defines the interface for permission repository operations
type PermissionRepositoryInterface interface {
	List(ctx context.Context) ([]models.Permission, error)
	GetByNames(ctx context.Context, names []string) ([]models.Permission, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filter UserFilter) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
