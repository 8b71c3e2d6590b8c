package models

import "github.com/google/uuid"

// Institution is the top-level tenant owning schools and licenses
type Institution struct {
	BaseModel
	Name     string           `json:"name" gorm:"size:200;not null"`
	TenantID uuid.UUID        `json:"tenantId" gorm:"type:uuid;not null;uniqueIndex"`
	Address  *string          `json:"address,omitempty" gorm:"size:500"`
	Type     *InstitutionType `json:"type,omitempty" gorm:"size:20"`
	AuditFields

	Schools  []School  `json:"-" gorm:"foreignKey:InstitutionID;constraint:OnDelete:CASCADE"`
	Licenses []License `json:"-" gorm:"foreignKey:InstitutionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Institution
func (Institution) TableName() string {
	return "institutions"
}
