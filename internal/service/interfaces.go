package service

import (
	"context"

	"eduman-backend/internal/database/models"
	"eduman-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// InstitutionServiceInterface defines the interface for institution service
type InstitutionServiceInterface interface {
	List(ctx context.Context) ([]models.Institution, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Institution, error)
	Create(ctx context.Context, req *CreateInstitutionRequest) (*models.Institution, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateInstitutionRequest) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// SchoolServiceInterface defines the interface for school service
type SchoolServiceInterface interface {
	ListByInstitution(ctx context.Context, institutionID uuid.UUID) ([]models.School, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.School, error)
	Create(ctx context.Context, req *CreateSchoolRequest) (*models.School, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateSchoolRequest) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ClassServiceInterface defines the interface for class service
type ClassServiceInterface interface {
	ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]models.Class, error)
	Create(ctx context.Context, req *CreateClassRequest) (*models.Class, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// LicenseServiceInterface defines the interface for license service
type LicenseServiceInterface interface {
	ListByInstitution(ctx context.Context, institutionID uuid.UUID) ([]models.License, error)
	Create(ctx context.Context, req *CreateLicenseRequest) (*models.License, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// RoleServiceInterface defines the interface for role service
type RoleServiceInterface interface {
	List(ctx context.Context) ([]models.Role, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Role, error)
	Create(ctx context.Context, req *CreateRoleRequest) (*models.Role, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRoleRequest) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	GetPermissions(ctx context.Context, id uuid.UUID) ([]string, error)
	ReplacePermissions(ctx context.Context, id uuid.UUID, names []string) (bool, error)
}

// PermissionServiceInterface defines the interface for permission service
type PermissionServiceInterface interface {
	List(ctx context.Context) ([]models.Permission, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context, filter repository.UserFilter) ([]models.User, error)
	Create(ctx context.Context, req *CreateUserRequest, password string) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// LicenseGuardInterface defines the admission check run before a user joins an institution
type LicenseGuardInterface interface {
	EnsureUserCanBeCreated(ctx context.Context, institutionID uuid.UUID) (*GuardResult, error)
}

// ReportServiceInterface defines the interface for the reports aggregator
type ReportServiceInterface interface {
	GetSummary(ctx context.Context, filter ReportFilter) (*ReportSummary, error)
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	Overview(ctx context.Context) (*DashboardOverview, error)
}
