package service

import (
	"context"
	"fmt"

	"eduman-backend/internal/repository"
)

// DashboardOverview holds the entity counts shown on the dashboard
type DashboardOverview struct {
	Institutions int64 `json:"institutions"`
	Schools      int64 `json:"schools"`
	Classes      int64 `json:"classes"`
	Licenses     int64 `json:"licenses"`
	Users        int64 `json:"users"`
}

// DashboardService computes dashboard counts
type DashboardService struct {
	institutions repository.InstitutionRepositoryInterface
	schools      repository.SchoolRepositoryInterface
	classes      repository.ClassRepositoryInterface
	licenses     repository.LicenseRepositoryInterface
	users        repository.UserRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	institutions repository.InstitutionRepositoryInterface,
	schools repository.SchoolRepositoryInterface,
	classes repository.ClassRepositoryInterface,
	licenses repository.LicenseRepositoryInterface,
	users repository.UserRepositoryInterface,
) *DashboardService {
	return &DashboardService{
		institutions: institutions,
		schools:      schools,
		classes:      classes,
		licenses:     licenses,
		users:        users,
	}
}

// Overview counts every entity kind
func (s *DashboardService) Overview(ctx context.Context) (*DashboardOverview, error) {
	var overview DashboardOverview
	counters := []struct {
		name  string
		count func(context.Context) (int64, error)
		dst   *int64
	}{
		{"institutions", s.institutions.Count, &overview.Institutions},
		{"schools", s.schools.Count, &overview.Schools},
		{"classes", s.classes.Count, &overview.Classes},
		{"licenses", s.licenses.Count, &overview.Licenses},
		{"users", s.users.Count, &overview.Users},
	}

	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
		*c.dst = n
	}
	return &overview, nil
}
