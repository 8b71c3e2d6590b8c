package service_test

import (
	"context"
	"errors"
	"testing"

	"eduman-backend/internal/mocks"
	"eduman-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	institutions := mocks.NewMockInstitutionRepositoryInterface(ctrl)
	schools := mocks.NewMockSchoolRepositoryInterface(ctrl)
	classes := mocks.NewMockClassRepositoryInterface(ctrl)
	licenses := mocks.NewMockLicenseRepositoryInterface(ctrl)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := service.NewDashboardService(institutions, schools, classes, licenses, users)

	institutions.EXPECT().Count(gomock.Any()).Return(int64(2), nil)
	schools.EXPECT().Count(gomock.Any()).Return(int64(5), nil)
	classes.EXPECT().Count(gomock.Any()).Return(int64(40), nil)
	licenses.EXPECT().Count(gomock.Any()).Return(int64(3), nil)
	users.EXPECT().Count(gomock.Any()).Return(int64(120), nil)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &service.DashboardOverview{Institutions: 2, Schools: 5, Classes: 40, Licenses: 3, Users: 120}, overview)

	institutions.EXPECT().Count(gomock.Any()).Return(int64(2), nil)
	schools.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("timeout"))

	_, err = svc.Overview(context.Background())
	assert.ErrorContains(t, err, "failed to count schools: timeout")
}
