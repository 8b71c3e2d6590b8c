package models

import "strings"

// InstitutionType classifies an institution's ownership
type InstitutionType string

const (
	InstitutionTypePublic  InstitutionType = "public"
	InstitutionTypePrivate InstitutionType = "private"
)

// LicenseStatus is the display status of a license
type LicenseStatus string

const (
	LicenseStatusActive   LicenseStatus = "active"
	LicenseStatusDemo     LicenseStatus = "demo"
	LicenseStatusExpiring LicenseStatus = "expiring"
	LicenseStatusPassive  LicenseStatus = "passive"
)

// UserStatus is the account state of a user
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// DefaultUserRole is assigned when a user is created without a role label
const DefaultUserRole = "user"

// IsValid checks if the InstitutionType is valid
func (t InstitutionType) IsValid() bool {
	switch t {
	case InstitutionTypePublic, InstitutionTypePrivate:
		return true
	}
	return false
}

// IsValid checks if the LicenseStatus is valid
func (s LicenseStatus) IsValid() bool {
	switch s {
	case LicenseStatusActive, LicenseStatusDemo, LicenseStatusExpiring, LicenseStatusPassive:
		return true
	}
	return false
}

// IsValid checks if the UserStatus is valid
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive:
		return true
	}
	return false
}

// ParseUserStatus parses a status case-insensitively
func ParseUserStatus(s string) (UserStatus, bool) {
	status := UserStatus(strings.ToLower(strings.TrimSpace(s)))
	return status, status.IsValid()
}
