package models

import "github.com/google/uuid"

// ExpiringWindowDays is how close to its end date a license is reported as expiring
const ExpiringWindowDays = 30

// License grants an institution a user quota for an inclusive date range
type License struct {
	BaseModel
	InstitutionID uuid.UUID      `json:"institutionId" gorm:"type:uuid;not null;index"`
	LicenseKey    string         `json:"licenseKey" gorm:"size:100;not null;uniqueIndex"`
	UserLimit     int            `json:"userLimit" gorm:"not null;default:0"`
	StartDate     Date           `json:"startDate" gorm:"not null"`
	EndDate       Date           `json:"endDate" gorm:"not null;index"`
	IsDemo        bool           `json:"isDemo" gorm:"not null;default:false"`
	UsedUsers     *int           `json:"usedUsers,omitempty"`
	Type          *string        `json:"type,omitempty" gorm:"size:50"`
	Status        *LicenseStatus `json:"status,omitempty" gorm:"size:20"`
	AuditFields
}

// TableName returns the table name for License
func (License) TableName() string {
	return "licenses"
}

// Covers reports whether day falls inside the license's start and end dates, both inclusive
func (l *License) Covers(day Date) bool {
	return !day.Before(l.StartDate) && !day.After(l.EndDate)
}

// DeriveStatus computes the display status on the given day
func (l *License) DeriveStatus(today Date) LicenseStatus {
	switch {
	case today.After(l.EndDate):
		return LicenseStatusPassive
	case l.IsDemo:
		return LicenseStatusDemo
	case !today.AddDays(ExpiringWindowDays).Before(l.EndDate):
		return LicenseStatusExpiring
	}
	return LicenseStatusActive
}
