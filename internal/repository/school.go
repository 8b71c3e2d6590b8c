package repository

import (
	"context"

	"eduman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolRepository handles database operations for schools
type SchoolRepository struct {
	*Repository[models.School]
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *gorm.DB) *SchoolRepository {
	return &SchoolRepository{Repository: NewRepository[models.School](db)}
}

// ListByInstitution retrieves the schools of an institution ordered by name
func (r *SchoolRepository) ListByInstitution(ctx context.Context, institutionID uuid.UUID) ([]models.School, error) {
	return r.list(ctx, "name", whereEq("institution_id", institutionID))
}

// ClassRepository handles database operations for classes
type ClassRepository struct {
	*Repository[models.Class]
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{Repository: NewRepository[models.Class](db)}
}

// ListBySchool retrieves the classes of a school ordered by level then section
func (r *ClassRepository) ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]models.Class, error) {
	return r.list(ctx, "level, section", whereEq("school_id", schoolID))
}
