package repository

import (
	"context"

	"eduman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InstitutionRepository handles database operations for institutions
type InstitutionRepository struct {
	*Repository[models.Institution]
}

// NewInstitutionRepository creates a new institution repository
func NewInstitutionRepository(db *gorm.DB) *InstitutionRepository {
	return &InstitutionRepository{Repository: NewRepository[models.Institution](db)}
}

// GetByTenantID retrieves an institution by its tenant identifier
func (r *InstitutionRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) (*models.Institution, error) {
	var institution models.Institution
	if err := r.conn(ctx).First(&institution, "tenant_id = ?", tenantID).Error; err != nil {
		return nil, err
	}
	return &institution, nil
}

// List retrieves all institutions ordered by name
func (r *InstitutionRepository) List(ctx context.Context) ([]models.Institution, error) {
	return r.list(ctx, "name")
}
