package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"eduman-backend/internal/database/models"
	"eduman-backend/internal/mocks"
	"eduman-backend/internal/service"
	"eduman-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReportHandlerTestSuite defines the test suite for ReportHandler
type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockReports   *mocks.MockReportServiceInterface
	mockDashboard *mocks.MockDashboardServiceInterface
	httpSuite     *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ReportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReports = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.mockDashboard = mocks.NewMockDashboardServiceInterface(suite.ctrl)
	handler := NewReportHandler(suite.mockReports, suite.mockDashboard)

	suite.httpSuite = testutils.SetupHTTPTest()
	api := suite.httpSuite.Router.Group("/api")
	{
		api.GET("/reports/summary", handler.GetSummary)
		api.GET("/reports/download", handler.Download)
		api.GET("/dashboard/overview", handler.Overview)
	}
}

// TearDownTest cleans up after each test
func (suite *ReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetSummaryWithoutFilter tests the unfiltered summary
func (suite *ReportHandlerTestSuite) TestGetSummaryWithoutFilter() {
	suite.mockReports.EXPECT().
		GetSummary(gomock.Any(), service.ReportFilter{}).
		Return(&service.ReportSummary{
			UsagePercent:       66.7,
			ActiveLicenses:     2,
			MonthlyTrend:       []service.TrendPoint{{Label: "Jan", Value: 1}},
			InstitutionSummary: []service.InstitutionSummary{},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/reports/summary", nil)

	var response service.ReportSummary
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 66.7, response.UsagePercent)
	assert.Equal(suite.T(), "Jan", response.MonthlyTrend[0].Label)
}

// TestGetSummaryParsesFilter tests institution and date parsing
func (suite *ReportHandlerTestSuite) TestGetSummaryParsesFilter() {
	institutionID := uuid.New()
	suite.mockReports.EXPECT().
		GetSummary(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter service.ReportFilter) (*service.ReportSummary, error) {
			suite.Require().NotNil(filter.InstitutionID)
			assert.Equal(suite.T(), institutionID, *filter.InstitutionID)
			suite.Require().NotNil(filter.Start)
			suite.Require().NotNil(filter.End)
			assert.Equal(suite.T(), models.NewDate(2025, time.January, 1), *filter.Start)
			assert.Equal(suite.T(), models.NewDate(2025, time.June, 30), *filter.End)
			return &service.ReportSummary{}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/api/reports/summary?institutionId="+institutionID.String()+"&start=2025-01-01&end=2025-06-30", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetSummaryInvalidQuery tests malformed filter values
func (suite *ReportHandlerTestSuite) TestGetSummaryInvalidQuery() {
	testCases := []struct {
		name    string
		query   string
		message string
	}{
		{"bad institution", "?institutionId=abc", "invalid institutionId"},
		{"bad start", "?start=01-01-2025", "invalid start"},
		{"bad end", "?start=2025-01-01&end=2025-13-01", "invalid end"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/reports/summary"+tc.query, nil)
			testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, tc.message)
		})
	}
}

// TestDownload tests the placeholder download endpoint
func (suite *ReportHandlerTestSuite) TestDownload() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/reports/download", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Empty(suite.T(), recorder.Body.String())
}

// TestOverview tests the dashboard counts
func (suite *ReportHandlerTestSuite) TestOverview() {
	suite.mockDashboard.EXPECT().Overview(gomock.Any()).Return(&service.DashboardOverview{
		Institutions: 2, Schools: 3, Classes: 4, Licenses: 2, Users: 9,
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/dashboard/overview", nil)

	var response service.DashboardOverview
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), int64(9), response.Users)
	assert.Equal(suite.T(), int64(3), response.Schools)
}

// TestReportHandlerTestSuite runs the test suite
func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
