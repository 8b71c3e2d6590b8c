package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduman-backend/internal/config"
	"eduman-backend/internal/database/models"
	apperrors "eduman-backend/internal/errors"
	"eduman-backend/internal/logger"
	"eduman-backend/internal/metrics"
	"eduman-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GuardResult is the outcome of an admission check.
// Reason is one of the apperrors.Reason* constants when Allowed is false.
type GuardResult struct {
	Allowed bool            `json:"allowed"`
	Reason  string          `json:"reason,omitempty"`
	License *models.License `json:"license,omitempty"`
}

// Err returns the denial as a LicenseDeniedError, or nil when allowed
func (r *GuardResult) Err() error {
	if r == nil || r.Allowed {
		return nil
	}
	return apperrors.NewLicenseDeniedError(r.Reason)
}

// LicenseGuard decides whether an institution's current license admits one more user.
// The current license is the one with the latest end date.
type LicenseGuard struct {
	db    *gorm.DB
	scope string
	now   func() time.Time
}

// NewLicenseGuard creates a guard counting users per institution or system-wide, per scope
func NewLicenseGuard(db *gorm.DB, scope string) *LicenseGuard {
	if scope != config.QuotaScopeGlobal {
		scope = config.QuotaScopeInstitution
	}
	return &LicenseGuard{db: db, scope: scope, now: time.Now}
}

// WithClock replaces the time source used to decide today's date
func (g *LicenseGuard) WithClock(now func() time.Time) *LicenseGuard {
	g.now = now
	return g
}

// EnsureUserCanBeCreated runs the check. The error is non-nil only for persistence failures.
// Inside a unit of work on Postgres the license row stays locked until commit.
func (g *LicenseGuard) EnsureUserCanBeCreated(ctx context.Context, institutionID uuid.UUID) (*GuardResult, error) {
	db := repository.Conn(ctx, g.db)

	var license models.License
	q := db.Where("institution_id = ?", institutionID).Order("end_date DESC")
	if repository.InTransaction(ctx) && db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&license).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return g.decide(ctx, institutionID, &GuardResult{Reason: apperrors.ReasonNoActiveLicense}), nil
		}
		return nil, fmt.Errorf("failed to load license: %w", err)
	}

	if !license.Covers(models.DateOf(g.now())) {
		return g.decide(ctx, institutionID, &GuardResult{Reason: apperrors.ReasonLicenseExpired, License: &license}), nil
	}

	var users int64
	countQuery := db.Model(&models.User{})
	if g.scope == config.QuotaScopeInstitution {
		countQuery = countQuery.Where("institution_id = ?", institutionID)
	}
	if err := countQuery.Count(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	if users >= int64(license.UserLimit) {
		return g.decide(ctx, institutionID, &GuardResult{Reason: apperrors.ReasonUserLimitExceeded, License: &license}), nil
	}
	return g.decide(ctx, institutionID, &GuardResult{Allowed: true, License: &license}), nil
}

func (g *LicenseGuard) decide(ctx context.Context, institutionID uuid.UUID, result *GuardResult) *GuardResult {
	outcome := metrics.LicenseDecisionAllowed
	if !result.Allowed {
		outcome = result.Reason
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"institution_id": institutionID,
			"reason":         result.Reason,
			"scope":          g.scope,
		}).Info("license guard denied user creation")
	}
	metrics.RecordLicenseDecision(outcome)
	return result
}
