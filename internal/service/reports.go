package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"eduman-backend/internal/database/models"
	"eduman-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrendMonths is the length of the monthly registration series
const TrendMonths = 6

// TrendSourceUserRegistrations names what the monthly trend counts
const TrendSourceUserRegistrations = "user-registrations"

// ReportFilter narrows the summary; nil fields are ignored
type ReportFilter struct {
	InstitutionID *uuid.UUID
	Start         *models.Date
	End           *models.Date
}

// TrendPoint is one month of the trend series
type TrendPoint struct {
	Label string `json:"label" example:"Jan"`
	Value int64  `json:"value" example:"12"`
}

// InstitutionSummary aggregates the holdings of one institution
type InstitutionSummary struct {
	InstitutionID uuid.UUID `json:"institutionId"`
	Name          string    `json:"name"`
	Schools       int64     `json:"schools"`
	Licenses      int64     `json:"licenses"`
	Classes       int64     `json:"classes"`
	UserCapacity  int64     `json:"userCapacity"`
}

// ReportSummary is the reports page payload
type ReportSummary struct {
	UsagePercent       float64              `json:"usagePercent" example:"250.5"`
	ActiveLicenses     int64                `json:"activeLicenses"`
	TotalUserCapacity  int64                `json:"totalUserCapacity"`
	MonthlyTrend       []TrendPoint         `json:"monthlyTrend"`
	TrendSource        string               `json:"trendSource" example:"user-registrations"`
	InstitutionSummary []InstitutionSummary `json:"institutionSummary"`
}

// ReportService aggregates licenses, schools and classes across tenants
type ReportService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db, now: time.Now}
}

// WithClock replaces the time source used to anchor the monthly trend
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

type licenseTotals struct {
	Count    int64
	Capacity int64
}

type institutionCount struct {
	InstitutionID uuid.UUID
	Count         int64
	Capacity      int64
}

// GetSummary builds the summary. Start and End only filter the license totals;
// per-institution rows count every owned license.
func (s *ReportService) GetSummary(ctx context.Context, filter ReportFilter) (*ReportSummary, error) {
	db := repository.Conn(ctx, s.db)

	var totals licenseTotals
	q := db.Model(&models.License{}).Select("COUNT(*) AS count, COALESCE(SUM(user_limit), 0) AS capacity")
	if filter.InstitutionID != nil {
		q = q.Where("institution_id = ?", *filter.InstitutionID)
	}
	if filter.Start != nil {
		q = q.Where("start_date >= ?", *filter.Start)
	}
	if filter.End != nil {
		q = q.Where("end_date <= ?", *filter.End)
	}
	if err := q.Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate licenses: %w", err)
	}

	rows, err := s.institutionRows(db, filter.InstitutionID)
	if err != nil {
		return nil, err
	}

	trend, err := s.monthlyTrend(db, filter.InstitutionID)
	if err != nil {
		return nil, err
	}

	return &ReportSummary{
		UsagePercent:       usagePercent(totals.Capacity, totals.Count),
		ActiveLicenses:     totals.Count,
		TotalUserCapacity:  totals.Capacity,
		MonthlyTrend:       trend,
		TrendSource:        TrendSourceUserRegistrations,
		InstitutionSummary: rows,
	}, nil
}

func (s *ReportService) institutionRows(db *gorm.DB, institutionID *uuid.UUID) ([]InstitutionSummary, error) {
	scope := func(column string) func(*gorm.DB) *gorm.DB {
		return func(q *gorm.DB) *gorm.DB {
			if institutionID != nil {
				return q.Where(column+" = ?", *institutionID)
			}
			return q
		}
	}

	var institutions []models.Institution
	if err := db.Scopes(scope("id")).Order("name").Find(&institutions).Error; err != nil {
		return nil, fmt.Errorf("failed to list institutions: %w", err)
	}

	var schools []institutionCount
	if err := db.Model(&models.School{}).
		Select("institution_id, COUNT(*) AS count").
		Scopes(scope("institution_id")).
		Group("institution_id").
		Scan(&schools).Error; err != nil {
		return nil, fmt.Errorf("failed to count schools: %w", err)
	}

	var licenses []institutionCount
	if err := db.Model(&models.License{}).
		Select("institution_id, COUNT(*) AS count, COALESCE(SUM(user_limit), 0) AS capacity").
		Scopes(scope("institution_id")).
		Group("institution_id").
		Scan(&licenses).Error; err != nil {
		return nil, fmt.Errorf("failed to count licenses: %w", err)
	}

	var classes []institutionCount
	if err := db.Model(&models.Class{}).
		Select("schools.institution_id AS institution_id, COUNT(*) AS count").
		Joins("JOIN schools ON schools.id = classes.school_id").
		Scopes(scope("schools.institution_id")).
		Group("schools.institution_id").
		Scan(&classes).Error; err != nil {
		return nil, fmt.Errorf("failed to count classes: %w", err)
	}

	schoolCounts := indexCounts(schools)
	licenseCounts := indexCounts(licenses)
	classCounts := indexCounts(classes)

	rows := make([]InstitutionSummary, 0, len(institutions))
	for _, inst := range institutions {
		rows = append(rows, InstitutionSummary{
			InstitutionID: inst.ID,
			Name:          inst.Name,
			Schools:       schoolCounts[inst.ID].Count,
			Licenses:      licenseCounts[inst.ID].Count,
			Classes:       classCounts[inst.ID].Count,
			UserCapacity:  licenseCounts[inst.ID].Capacity,
		})
	}
	return rows, nil
}

// monthlyTrend counts user registrations for each of the last TrendMonths calendar months, oldest first
func (s *ReportService) monthlyTrend(db *gorm.DB, institutionID *uuid.UUID) ([]TrendPoint, error) {
	now := s.now().UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	points := make([]TrendPoint, 0, TrendMonths)
	for i := TrendMonths - 1; i >= 0; i-- {
		from := current.AddDate(0, -i, 0)
		to := from.AddDate(0, 1, 0)

		var count int64
		q := db.Model(&models.User{}).Where("created_at >= ? AND created_at < ?", from, to)
		if institutionID != nil {
			q = q.Where("institution_id = ?", *institutionID)
		}
		if err := q.Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count registrations: %w", err)
		}
		points = append(points, TrendPoint{Label: from.Format("Jan"), Value: count})
	}
	return points, nil
}

func indexCounts(rows []institutionCount) map[uuid.UUID]institutionCount {
	out := make(map[uuid.UUID]institutionCount, len(rows))
	for _, r := range rows {
		out[r.InstitutionID] = r
	}
	return out
}

// usagePercent is capacity per license as a percentage, rounded half away from zero to one decimal
func usagePercent(capacity, licenses int64) float64 {
	if licenses == 0 {
		return 0
	}
	return math.Round(float64(capacity)/float64(licenses)*1000) / 10
}
