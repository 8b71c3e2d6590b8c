package database

import (
	"fmt"
	"strings"

	"eduman-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Resources and actions that make up the default permission catalogue ("School.Read", ...)
var (
	permissionResources = []string{"Institution", "School", "Class", "License", "Role", "User", "Report", "Dashboard"}
	permissionActions   = []string{"Read", "Create", "Update", "Delete"}
)

// Default role names
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// DefaultPermissions returns the default permission names
func DefaultPermissions() []string {
	names := make([]string, 0, len(permissionResources)*len(permissionActions))
	for _, resource := range permissionResources {
		for _, action := range permissionActions {
			names = append(names, resource+"."+action)
		}
	}
	return names
}

// SeedDefaults inserts the permission catalogue and the admin and user roles.
// Existing rows are left untouched, so it is safe to run on every start.
func SeedDefaults(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		names := DefaultPermissions()
		perms := make([]models.Permission, len(names))
		for i, name := range names {
			perms[i] = models.Permission{Name: name}
		}
		if err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&perms).Error; err != nil {
			return fmt.Errorf("seed permissions: %w", err)
		}

		var stored []models.Permission
		if err := tx.Where("name IN ?", names).Find(&stored).Error; err != nil {
			return fmt.Errorf("load permissions: %w", err)
		}

		if err := seedRole(tx, RoleAdmin, "Full access", stored, func(string) bool { return true }); err != nil {
			return err
		}
		return seedRole(tx, RoleUser, "Read-only access", stored, func(name string) bool {
			return strings.HasSuffix(name, ".Read")
		})
	})
}

func seedRole(tx *gorm.DB, name, description string, perms []models.Permission, include func(string) bool) error {
	var existing int64
	if err := tx.Model(&models.Role{}).Where("name = ?", name).Count(&existing).Error; err != nil {
		return fmt.Errorf("check role %s: %w", name, err)
	}
	if existing > 0 {
		return nil
	}

	role := models.Role{Name: name, Description: &description}
	if err := tx.Create(&role).Error; err != nil {
		return fmt.Errorf("create role %s: %w", name, err)
	}

	links := make([]models.RolePermission, 0, len(perms))
	for _, p := range perms {
		if include(p.Name) {
			links = append(links, models.RolePermission{RoleID: role.ID, PermissionID: p.ID})
		}
	}
	if len(links) == 0 {
		return nil
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("assign permissions to %s: %w", name, err)
	}
	return nil
}
