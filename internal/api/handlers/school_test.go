package handlers

import (
	"net/http"
	"testing"

	"eduman-backend/internal/database/models"
	apperrors "eduman-backend/internal/errors"
	"eduman-backend/internal/mocks"
	"eduman-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SchoolHandlerTestSuite covers school and class endpoints
type SchoolHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockSchools *mocks.MockSchoolServiceInterface
	mockClasses *mocks.MockClassServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *SchoolHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSchools = mocks.NewMockSchoolServiceInterface(suite.ctrl)
	suite.mockClasses = mocks.NewMockClassServiceInterface(suite.ctrl)
	handler := NewSchoolHandler(suite.mockSchools, suite.mockClasses)

	suite.httpSuite = testutils.SetupHTTPTest()
	api := suite.httpSuite.Router.Group("/api")
	{
		api.GET("/schools/institution/:institutionId", handler.ListSchools)
		api.GET("/schools/:id", handler.GetSchool)
		api.POST("/schools", handler.CreateSchool)
		api.PUT("/schools/:id", handler.UpdateSchool)
		api.DELETE("/schools/:id", handler.DeleteSchool)
		api.GET("/classes/school/:schoolId", handler.ListClasses)
		api.POST("/classes", handler.CreateClass)
		api.DELETE("/classes/:id", handler.DeleteClass)
	}
}

// TearDownTest cleans up after each test
func (suite *SchoolHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListSchools tests listing schools by institution
func (suite *SchoolHandlerTestSuite) TestListSchools() {
	institutionID := uuid.New()
	suite.mockSchools.EXPECT().
		ListByInstitution(gomock.Any(), institutionID).
		Return([]models.School{{InstitutionID: institutionID, Name: "North"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/schools/institution/"+institutionID.String(), nil)

	var response []models.School
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 1)
}

// TestGetSchool tests lookup by id and the not-found mapping
func (suite *SchoolHandlerTestSuite) TestGetSchool() {
	id := uuid.New()
	suite.mockSchools.EXPECT().GetByID(gomock.Any(), id).Return(&models.School{Name: "North"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/schools/"+id.String(), nil)

	var response models.School
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "North", response.Name)

	missing := uuid.New()
	suite.mockSchools.EXPECT().GetByID(gomock.Any(), missing).Return(nil, apperrors.ErrSchoolNotFound)
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/schools/"+missing.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "school not found")
}

// TestCreateSchoolUnknownInstitution tests the validation mapping
func (suite *SchoolHandlerTestSuite) TestCreateSchoolUnknownInstitution() {
	suite.mockSchools.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("institutionId", "institution does not exist"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/schools", map[string]interface{}{
		"institutionId": uuid.New(),
		"name":          "North",
	})

	var response ErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	assert.Equal(suite.T(), TitleValidationFailed, response.Title)
	assert.Equal(suite.T(), map[string]interface{}{"institutionId": "institution does not exist"}, response.Details)
}

// TestUpdateSchoolNotFound tests the not-found mapping
func (suite *SchoolHandlerTestSuite) TestUpdateSchoolNotFound() {
	id := uuid.New()
	suite.mockSchools.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(false, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/schools/"+id.String(), map[string]interface{}{"name": "X"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "school not found")
}

// TestDeleteSchool tests a successful delete
func (suite *SchoolHandlerTestSuite) TestDeleteSchool() {
	id := uuid.New()
	suite.mockSchools.EXPECT().Delete(gomock.Any(), id).Return(true, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/schools/"+id.String(), nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestClassEndpoints tests list, create and delete of classes
func (suite *SchoolHandlerTestSuite) TestClassEndpoints() {
	schoolID := uuid.New()
	classID := uuid.New()

	suite.mockClasses.EXPECT().ListBySchool(gomock.Any(), schoolID).Return([]models.Class{{SchoolID: schoolID, Level: "9", Section: "A"}}, nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/classes/school/"+schoolID.String(), nil)
	var classes []models.Class
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &classes)
	assert.Equal(suite.T(), "9", classes[0].Level)

	suite.mockClasses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.Class{BaseModel: models.BaseModel{ID: classID}, SchoolID: schoolID}, nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/classes", map[string]interface{}{
		"schoolId": schoolID, "level": "9", "section": "A",
	})
	var created models.Class
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &created)
	assert.Equal(suite.T(), classID, created.ID)

	suite.mockClasses.EXPECT().Delete(gomock.Any(), classID).Return(false, nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/classes/"+classID.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "class not found")
}

// TestInvalidPathIDs tests malformed path ids
func (suite *SchoolHandlerTestSuite) TestInvalidPathIDs() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/schools/institution/123", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid institutionId")

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/classes/school/abc", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid schoolId")

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/schools/not-a-uuid", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid id")
}

// TestSchoolHandlerTestSuite runs the test suite
func TestSchoolHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SchoolHandlerTestSuite))
}
