package models

import "github.com/google/uuid"

// Role is a named set of permissions
type Role struct {
	BaseModel
	Name        string  `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Description *string `json:"description,omitempty" gorm:"size:500"`

	RolePermissions []RolePermission `json:"-" gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}

// Permission is an atomic allowed action such as "School.Read"
type Permission struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`

	RolePermissions []RolePermission `json:"-" gorm:"foreignKey:PermissionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Permission
func (Permission) TableName() string {
	return "permissions"
}

// RolePermission joins roles and permissions; the pair is the primary key
type RolePermission struct {
	RoleID       uuid.UUID `json:"roleId" gorm:"type:uuid;primaryKey"`
	PermissionID uuid.UUID `json:"permissionId" gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for RolePermission
func (RolePermission) TableName() string {
	return "role_permissions"
}
