package repository

import (
	"context"
	"strings"

	"eduman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFilter narrows a user listing; zero values are ignored
type UserFilter struct {
	InstitutionID *uuid.UUID
	Role          string
	Status        string
	Query         string
}

// UserRepository handles database operations for users
type UserRepository struct {
	*Repository[models.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Repository: NewRepository[models.User](db)}
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.conn(ctx).First(&user, "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves users matching filter ordered by full name.
// Role and status match case-insensitively; Query is a substring of full name or email.
func (r *UserRepository) List(ctx context.Context, filter UserFilter) ([]models.User, error) {
	return r.list(ctx, "full_name", func(db *gorm.DB) *gorm.DB {
		if filter.InstitutionID != nil {
			db = db.Where("institution_id = ?", *filter.InstitutionID)
		}
		if role := strings.TrimSpace(filter.Role); role != "" {
			db = db.Where("LOWER(role) = ?", strings.ToLower(role))
		}
		if status := strings.TrimSpace(filter.Status); status != "" {
			db = db.Where("LOWER(status) = ?", strings.ToLower(status))
		}
		if q := strings.TrimSpace(filter.Query); q != "" {
			pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
			db = db.Where(`(LOWER(full_name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\')`, pattern, pattern)
		}
		return db
	})
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
