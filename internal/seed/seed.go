// Package seed loads demo fixtures from YAML into the database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"eduman-backend/internal/auth"
	"eduman-backend/internal/database/models"
	"eduman-backend/internal/logger"
	"eduman-backend/internal/repository"
	"eduman-backend/internal/requestctx"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Actor is recorded as creator of every seeded row
const Actor = "seed"

// Fixtures is the root of a fixture file
type Fixtures struct {
	Institutions []InstitutionData `yaml:"institutions"`
	Users        []UserData        `yaml:"users"`
}

// InstitutionData describes an institution with its schools and licenses
type InstitutionData struct {
	Name     string        `yaml:"name"`
	TenantID string        `yaml:"tenant_id,omitempty"`
	Address  string        `yaml:"address,omitempty"`
	Type     string        `yaml:"type,omitempty"`
	Schools  []SchoolData  `yaml:"schools,omitempty"`
	Licenses []LicenseData `yaml:"licenses,omitempty"`
}

// SchoolData describes a school and its classes
type SchoolData struct {
	Name        string      `yaml:"name"`
	BranchCount *int        `yaml:"branch_count,omitempty"`
	Classes     []ClassData `yaml:"classes,omitempty"`
}

// ClassData describes a class
type ClassData struct {
	Level   string `yaml:"level"`
	Section string `yaml:"section"`
}

// LicenseData describes a license; dates are YYYY-MM-DD
type LicenseData struct {
	Key       string `yaml:"key"`
	UserLimit int    `yaml:"user_limit"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
	IsDemo    bool   `yaml:"is_demo,omitempty"`
}

// UserData describes a user; Institution refers to an institution by name
type UserData struct {
	FullName    string `yaml:"full_name"`
	Email       string `yaml:"email"`
	Role        string `yaml:"role,omitempty"`
	Institution string `yaml:"institution,omitempty"`
	Password    string `yaml:"password"`
}

// Result counts rows created by Apply; existing rows are not counted
type Result struct {
	Institutions int
	Schools      int
	Classes      int
	Licenses     int
	Users        int
}

// LoadFile reads and parses a fixture file
func LoadFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes fixtures from YAML
func Parse(data []byte) (*Fixtures, error) {
	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &fixtures, nil
}

// Loader writes fixtures through the repositories
type Loader struct {
	uow          repository.UnitOfWorkInterface
	institutions *repository.InstitutionRepository
	schools      *repository.SchoolRepository
	classes      *repository.ClassRepository
	licenses     *repository.LicenseRepository
	users        *repository.UserRepository
	hasher       auth.PasswordHasher
	now          func() time.Time
}

// NewLoader creates a loader over db
func NewLoader(db *gorm.DB, hasher auth.PasswordHasher) *Loader {
	return &Loader{
		uow:          repository.NewUnitOfWork(db),
		institutions: repository.NewInstitutionRepository(db),
		schools:      repository.NewSchoolRepository(db),
		classes:      repository.NewClassRepository(db),
		licenses:     repository.NewLicenseRepository(db),
		users:        repository.NewUserRepository(db),
		hasher:       hasher,
		now:          time.Now,
	}
}

// Apply inserts every fixture not already present, in one transaction.
// Rows are matched by institution name, school name, class level and section,
// license key and user email, so Apply can be rerun on the same file.
// Seeded users bypass the license guard.
func (l *Loader) Apply(ctx context.Context, fixtures *Fixtures) (*Result, error) {
	ctx = requestctx.WithActor(ctx, Actor)
	result := &Result{}

	err := l.uow.Do(ctx, func(ctx context.Context) error {
		existing, err := l.institutions.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list institutions: %w", err)
		}
		byName := make(map[string]*models.Institution, len(existing))
		for i := range existing {
			byName[existing[i].Name] = &existing[i]
		}

		for _, data := range fixtures.Institutions {
			institution, err := l.ensureInstitution(ctx, data, byName, result)
			if err != nil {
				return fmt.Errorf("institution %q: %w", data.Name, err)
			}
			for _, school := range data.Schools {
				if err := l.ensureSchool(ctx, institution.ID, school, result); err != nil {
					return fmt.Errorf("school %q: %w", school.Name, err)
				}
			}
			for _, license := range data.Licenses {
				if err := l.ensureLicense(ctx, institution.ID, license, result); err != nil {
					return fmt.Errorf("license %q: %w", license.Key, err)
				}
			}
		}

		for _, data := range fixtures.Users {
			if err := l.ensureUser(ctx, data, byName, result); err != nil {
				return fmt.Errorf("user %q: %w", data.Email, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"institutions": result.Institutions,
		"schools":      result.Schools,
		"classes":      result.Classes,
		"licenses":     result.Licenses,
		"users":        result.Users,
	}).Info("fixtures applied")
	return result, nil
}

func (l *Loader) ensureInstitution(ctx context.Context, data InstitutionData, byName map[string]*models.Institution, result *Result) (*models.Institution, error) {
	if found, ok := byName[data.Name]; ok {
		return found, nil
	}

	institution := &models.Institution{Name: data.Name, TenantID: uuid.New()}
	if data.TenantID != "" {
		tenantID, err := uuid.Parse(data.TenantID)
		if err != nil {
			return nil, fmt.Errorf("invalid tenant_id: %w", err)
		}
		institution.TenantID = tenantID
	}
	if data.Address != "" {
		address := data.Address
		institution.Address = &address
	}
	if data.Type != "" {
		kind := models.InstitutionType(strings.ToLower(data.Type))
		if !kind.IsValid() {
			return nil, fmt.Errorf("invalid type %q", data.Type)
		}
		institution.Type = &kind
	}

	if err := l.institutions.Create(ctx, institution); err != nil {
		return nil, err
	}
	byName[data.Name] = institution
	result.Institutions++
	return institution, nil
}

func (l *Loader) ensureSchool(ctx context.Context, institutionID uuid.UUID, data SchoolData, result *Result) error {
	schools, err := l.schools.ListByInstitution(ctx, institutionID)
	if err != nil {
		return err
	}

	var school *models.School
	for i := range schools {
		if schools[i].Name == data.Name {
			school = &schools[i]
			break
		}
	}
	if school == nil {
		school = &models.School{InstitutionID: institutionID, Name: data.Name, BranchCount: data.BranchCount}
		if err := l.schools.Create(ctx, school); err != nil {
			return err
		}
		result.Schools++
	}

	classes, err := l.classes.ListBySchool(ctx, school.ID)
	if err != nil {
		return err
	}
	have := make(map[ClassData]bool, len(classes))
	for _, c := range classes {
		have[ClassData{Level: c.Level, Section: c.Section}] = true
	}
	for _, data := range data.Classes {
		if have[data] {
			continue
		}
		if err := l.classes.Create(ctx, &models.Class{SchoolID: school.ID, Level: data.Level, Section: data.Section}); err != nil {
			return err
		}
		have[data] = true
		result.Classes++
	}
	return nil
}

func (l *Loader) ensureLicense(ctx context.Context, institutionID uuid.UUID, data LicenseData, result *Result) error {
	if _, err := l.licenses.GetByKey(ctx, data.Key); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	start, err := models.ParseDate(data.StartDate)
	if err != nil {
		return err
	}
	end, err := models.ParseDate(data.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("end date %s before start date %s", end, start)
	}

	license := &models.License{
		InstitutionID: institutionID,
		LicenseKey:    data.Key,
		UserLimit:     data.UserLimit,
		StartDate:     start,
		EndDate:       end,
		IsDemo:        data.IsDemo,
	}
	status := license.DeriveStatus(models.DateOf(l.now()))
	license.Status = &status

	if err := l.licenses.Create(ctx, license); err != nil {
		return err
	}
	result.Licenses++
	return nil
}

func (l *Loader) ensureUser(ctx context.Context, data UserData, institutions map[string]*models.Institution, result *Result) error {
	email := strings.ToLower(strings.TrimSpace(data.Email))
	if _, err := l.users.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := l.hasher.Hash(data.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		FullName:     data.FullName,
		Email:        email,
		UserName:     email,
		Role:         data.Role,
		Status:       models.UserStatusActive,
		PasswordHash: hash,
	}
	if user.Role == "" {
		user.Role = models.DefaultUserRole
	}
	if data.Institution != "" {
		institution, ok := institutions[data.Institution]
		if !ok {
			return fmt.Errorf("unknown institution %q", data.Institution)
		}
		user.InstitutionID = &institution.ID
	}

	if err := l.users.Create(ctx, user); err != nil {
		return err
	}
	result.Users++
	return nil
}
