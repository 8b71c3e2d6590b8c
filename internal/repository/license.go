package repository

import (
	"context"

	"eduman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LicenseRepository handles database operations for licenses
type LicenseRepository struct {
	*Repository[models.License]
}

// NewLicenseRepository creates a new license repository
func NewLicenseRepository(db *gorm.DB) *LicenseRepository {
	return &LicenseRepository{Repository: NewRepository[models.License](db)}
}

// GetByKey retrieves a license by its license key
func (r *LicenseRepository) GetByKey(ctx context.Context, key string) (*models.License, error) {
	var license models.License
	if err := r.conn(ctx).First(&license, "license_key = ?", key).Error; err != nil {
		return nil, err
	}
	return &license, nil
}

// ListByInstitution retrieves an institution's licenses, latest end date first
func (r *LicenseRepository) ListByInstitution(ctx context.Context, institutionID uuid.UUID) ([]models.License, error) {
	return r.list(ctx, "end_date DESC", whereEq("institution_id", institutionID))
}
