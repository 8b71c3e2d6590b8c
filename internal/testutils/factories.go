package testutils

import (
	"fmt"
	"time"

	"eduman-backend/internal/database/models"

	"github.com/google/uuid"
)

// InstitutionFactory provides methods to create test Institution data
type InstitutionFactory struct{}

// NewInstitutionFactory creates a new InstitutionFactory
func NewInstitutionFactory() *InstitutionFactory {
	return &InstitutionFactory{}
}

// Create creates a test Institution with default values
func (f *InstitutionFactory) Create() *models.Institution {
	address := "1 Campus Road"
	kind := models.InstitutionTypePrivate
	return &models.Institution{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Test Institution",
		TenantID:  uuid.New(),
		Address:   &address,
		Type:      &kind,
	}
}

// WithName sets a custom name for the institution
func (f *InstitutionFactory) WithName(name string) *models.Institution {
	institution := f.Create()
	institution.Name = name
	return institution
}

// SchoolFactory provides methods to create test School data
type SchoolFactory struct{}

// NewSchoolFactory creates a new SchoolFactory
func NewSchoolFactory() *SchoolFactory {
	return &SchoolFactory{}
}

// Create creates a test School belonging to institutionID
func (f *SchoolFactory) Create(institutionID uuid.UUID) *models.School {
	branches := 1
	return &models.School{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		InstitutionID: institutionID,
		Name:          "Test School",
		BranchCount:   &branches,
	}
}

// WithName sets a custom name for the school
func (f *SchoolFactory) WithName(institutionID uuid.UUID, name string) *models.School {
	school := f.Create(institutionID)
	school.Name = name
	return school
}

// ClassFactory provides methods to create test Class data
type ClassFactory struct{}

// NewClassFactory creates a new ClassFactory
func NewClassFactory() *ClassFactory {
	return &ClassFactory{}
}

// Create creates a test Class belonging to schoolID
func (f *ClassFactory) Create(schoolID uuid.UUID, level, section string) *models.Class {
	return &models.Class{
		BaseModel: models.BaseModel{ID: uuid.New()},
		SchoolID:  schoolID,
		Level:     level,
		Section:   section,
	}
}

// LicenseFactory provides methods to create test License data
type LicenseFactory struct{}

// NewLicenseFactory creates a new LicenseFactory
func NewLicenseFactory() *LicenseFactory {
	return &LicenseFactory{}
}

// Create creates a test License for institutionID valid over the given inclusive range
func (f *LicenseFactory) Create(institutionID uuid.UUID, userLimit int, start, end models.Date) *models.License {
	return &models.License{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		InstitutionID: institutionID,
		LicenseKey:    "LIC-" + uuid.NewString()[:8],
		UserLimit:     userLimit,
		StartDate:     start,
		EndDate:       end,
	}
}

// ForYear creates a license covering the whole calendar year
func (f *LicenseFactory) ForYear(institutionID uuid.UUID, userLimit, year int) *models.License {
	return f.Create(institutionID, userLimit,
		models.NewDate(year, time.January, 1),
		models.NewDate(year, time.December, 31))
}

// UserFactory provides methods to create test User data
type UserFactory struct {
	seq int
}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active test User with a unique email
func (f *UserFactory) Create() *models.User {
	f.seq++
	email := fmt.Sprintf("user%d-%s@school.test", f.seq, uuid.NewString()[:6])
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FullName:  fmt.Sprintf("Test User %d", f.seq),
		Email:     email,
		UserName:  email,
		Role:      models.DefaultUserRole,
		Status:    models.UserStatusActive,
	}
}

// InInstitution creates a test User belonging to institutionID
func (f *UserFactory) InInstitution(institutionID uuid.UUID) *models.User {
	user := f.Create()
	user.InstitutionID = &institutionID
	return user
}

// FactorySet provides access to all factories
type FactorySet struct {
	Institution *InstitutionFactory
	School      *SchoolFactory
	Class       *ClassFactory
	License     *LicenseFactory
	User        *UserFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Institution: NewInstitutionFactory(),
		School:      NewSchoolFactory(),
		Class:       NewClassFactory(),
		License:     NewLicenseFactory(),
		User:        NewUserFactory(),
	}
}
