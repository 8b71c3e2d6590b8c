package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides the UUID primary key shared by all models
type BaseModel struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// Auditable is implemented by models whose writes are stamped with actor and time.
// The repository write path calls these explicitly before each insert or update.
type Auditable interface {
	StampCreated(actor string, at time.Time)
	StampModified(actor string, at time.Time)
}

// AuditFields records who created and last modified a row.
// Creation fields are set once and never overwritten.
type AuditFields struct {
	CreatedAt  time.Time  `json:"createdAt" gorm:"not null"`
	CreatedBy  string     `json:"createdBy,omitempty" gorm:"size:320"`
	ModifiedAt *time.Time `json:"modifiedAt,omitempty"`
	ModifiedBy *string    `json:"modifiedBy,omitempty" gorm:"size:320"`
}

// StampCreated fills the creation fields that are still empty
func (a *AuditFields) StampCreated(actor string, at time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = at.UTC()
	}
	if a.CreatedBy == "" {
		a.CreatedBy = actor
	}
}

// StampModified records the latest modification
func (a *AuditFields) StampModified(actor string, at time.Time) {
	modifiedAt := at.UTC()
	a.ModifiedAt = &modifiedAt
	a.ModifiedBy = &actor
}
