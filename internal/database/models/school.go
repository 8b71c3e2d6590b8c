package models

import "github.com/google/uuid"

// School belongs to one institution and owns classes
type School struct {
	BaseModel
	InstitutionID uuid.UUID `json:"institutionId" gorm:"type:uuid;not null;index"`
	Name          string    `json:"name" gorm:"size:200;not null"`
	Address       *string   `json:"address,omitempty" gorm:"size:500"`
	BranchCount   *int      `json:"branchCount,omitempty"`
	AuditFields

	Classes []Class `json:"-" gorm:"foreignKey:SchoolID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for School
func (School) TableName() string {
	return "schools"
}

// Class is a level/section pair inside a school, e.g. 9-A
type Class struct {
	BaseModel
	SchoolID uuid.UUID `json:"schoolId" gorm:"type:uuid;not null;index"`
	Level    string    `json:"level" gorm:"size:20;not null"`
	Section  string    `json:"section" gorm:"size:20;not null"`
	AuditFields
}

// TableName returns the table name for Class
func (Class) TableName() string {
	return "classes"
}
