package models

import "github.com/google/uuid"

// User is an application account; Email doubles as the login name
type User struct {
	BaseModel
	FullName      string     `json:"fullName" gorm:"size:200;not null"`
	Email         string     `json:"email" gorm:"uniqueIndex;not null;size:320"`
	UserName      string     `json:"userName" gorm:"size:320;not null"`
	Role          string     `json:"role" gorm:"type:varchar(100);not null;default:'user'"`
	InstitutionID *uuid.UUID `json:"institutionId,omitempty" gorm:"type:uuid;index"`
	Status        UserStatus `json:"status" gorm:"type:varchar(16);not null;default:'active'"`
	PasswordHash  string     `json:"-" gorm:"size:100"`
	AuditFields

	Institution *Institution `json:"-" gorm:"foreignKey:InstitutionID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsActive reports whether the user may sign in
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
