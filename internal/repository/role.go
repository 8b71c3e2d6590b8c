package repository

import (
	"context"
	"fmt"

	"eduman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleRepository handles database operations for roles and their permission links
type RoleRepository struct {
	*Repository[models.Role]
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{Repository: NewRepository[models.Role](db)}
}

// GetByName retrieves a role by name
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	if err := r.conn(ctx).First(&role, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// List retrieves all roles ordered by name
func (r *RoleRepository) List(ctx context.Context) ([]models.Role, error) {
	return r.list(ctx, "name")
}

// PermissionNames returns the names of the role's permissions, sorted
func (r *RoleRepository) PermissionNames(ctx context.Context, roleID uuid.UUID) ([]string, error) {
	names := []string{}
	err := r.conn(ctx).
		Model(&models.Permission{}).
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Order("permissions.name").
		Pluck("permissions.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// ReplacePermissions deletes every link of the role and inserts the given set.
// Both statements run in one transaction: the caller's unit of work when present, otherwise a new one.
func (r *RoleRepository) ReplacePermissions(ctx context.Context, roleID uuid.UUID, permissionIDs []uuid.UUID) error {
	replace := func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&models.RolePermission{}).Error; err != nil {
			return fmt.Errorf("remove role permissions: %w", err)
		}
		if len(permissionIDs) == 0 {
			return nil
		}

		seen := make(map[uuid.UUID]struct{}, len(permissionIDs))
		links := make([]models.RolePermission, 0, len(permissionIDs))
		for _, id := range permissionIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			links = append(links, models.RolePermission{RoleID: roleID, PermissionID: id})
		}
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("add role permissions: %w", err)
		}
		return nil
	}

	if InTransaction(ctx) {
		return replace(r.conn(ctx))
	}
	return r.conn(ctx).Transaction(replace)
}

// PermissionRepository handles read access to the permission catalogue
type PermissionRepository struct {
	*Repository[models.Permission]
}

// NewPermissionRepository creates a new permission repository
func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{Repository: NewRepository[models.Permission](db)}
}

// List retrieves all permissions ordered by name
func (r *PermissionRepository) List(ctx context.Context) ([]models.Permission, error) {
	return r.list(ctx, "name")
}

// GetByNames retrieves the permissions whose names are in names; unknown names are ignored
func (r *PermissionRepository) GetByNames(ctx context.Context, names []string) ([]models.Permission, error) {
	if len(names) == 0 {
		return []models.Permission{}, nil
	}
	return r.list(ctx, "name", func(db *gorm.DB) *gorm.DB {
		return db.Where("name IN ?", names)
	})
}
