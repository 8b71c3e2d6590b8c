package handlers

import (
	"net/http"
	"testing"

	"eduman-backend/internal/auth"
	"eduman-backend/internal/database/models"
	apperrors "eduman-backend/internal/errors"
	"eduman-backend/internal/mocks"
	"eduman-backend/internal/repository"
	"eduman-backend/internal/service"
	"eduman-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	currentUser uuid.UUID
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.currentUser = uuid.New()
	handler := NewUserHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	users := suite.httpSuite.Router.Group("/api/users")
	{
		users.GET("/me", func(c *gin.Context) {
			if c.GetHeader("X-Test-Anonymous") == "" {
				c.Set(auth.ContextUserID, suite.currentUser)
			}
			c.Next()
		}, handler.GetCurrentUser)
		users.GET("", handler.ListUsers)
		users.POST("", handler.CreateUser)
		users.PUT("/:id", handler.UpdateUser)
		users.DELETE("/:id", handler.DeleteUser)
	}
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetCurrentUser tests resolving the signed-in user
func (suite *UserHandlerTestSuite) TestGetCurrentUser() {
	user := testutils.NewUserFactory().Create()
	user.ID = suite.currentUser
	suite.mockService.EXPECT().GetByID(gomock.Any(), suite.currentUser).Return(user, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/users/me", nil)

	var response models.User
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), user.Email, response.Email)
}

// TestGetCurrentUserWithoutIdentity tests the 401 when no identity is attached
func (suite *UserHandlerTestSuite) TestGetCurrentUserWithoutIdentity() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/users/me", nil, map[string]string{
		"X-Test-Anonymous": "1",
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "authentication required")
}

// TestGetCurrentUserDeleted tests a token whose user no longer exists
func (suite *UserHandlerTestSuite) TestGetCurrentUserDeleted() {
	suite.mockService.EXPECT().GetByID(gomock.Any(), suite.currentUser).Return(nil, apperrors.ErrUserNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/users/me", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestListUsersFilter tests that query parameters reach the filter
func (suite *UserHandlerTestSuite) TestListUsersFilter() {
	institutionID := uuid.New()
	expected := repository.UserFilter{
		InstitutionID: &institutionID,
		Role:          "Teacher",
		Status:        "active",
		Query:         "jane",
	}
	suite.mockService.EXPECT().List(gomock.Any(), expected).Return([]models.User{}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/api/users?institutionId="+institutionID.String()+"&role=Teacher&status=active&q=jane", nil)

	var response []models.User
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Empty(suite.T(), response)
}

// TestListUsersInvalidInstitution tests a malformed institutionId query
func (suite *UserHandlerTestSuite) TestListUsersInvalidInstitution() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/users?institutionId=nope", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid institutionId")
}

// TestCreateUser tests that the password query value reaches the service
func (suite *UserHandlerTestSuite) TestCreateUser() {
	institutionID := uuid.New()
	created := testutils.NewUserFactory().InInstitution(institutionID)

	suite.mockService.EXPECT().
		Create(gomock.Any(), &service.CreateUserRequest{
			FullName:      "Jane Doe",
			Email:         "jane@school.test",
			InstitutionID: &institutionID,
		}, "S3cure!pass").
		Return(created, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/users?password=S3cure!pass", map[string]interface{}{
		"fullName":      "Jane Doe",
		"email":         "jane@school.test",
		"institutionId": institutionID,
	})

	var response models.User
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), created.ID, response.ID)
}

// TestCreateUserLicenseDenied tests the status of each guard reason
func (suite *UserHandlerTestSuite) TestCreateUserLicenseDenied() {
	testCases := []struct {
		name   string
		err    error
		status int
		title  string
	}{
		{"no active license", apperrors.ErrNoActiveLicense, http.StatusUnprocessableEntity, apperrors.ReasonNoActiveLicense},
		{"license expired", apperrors.ErrLicenseExpired, http.StatusForbidden, apperrors.ReasonLicenseExpired},
		{"user limit", apperrors.ErrUserLimitExceeded, http.StatusConflict, apperrors.ReasonUserLimitExceeded},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/users?password=x", map[string]interface{}{
				"fullName":      "Jane Doe",
				"email":         "jane@school.test",
				"institutionId": uuid.New(),
			})

			var response ErrorResponse
			testutils.AssertJSONResponse(suite.T(), recorder, tc.status, &response)
			assert.Equal(suite.T(), tc.title, response.Title)
		})
	}
}

// TestCreateUserValidation tests the validation error mapping
func (suite *UserHandlerTestSuite) TestCreateUserValidation() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any(), "").
		Return(nil, apperrors.NewValidationError("password", "password is required"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/users", map[string]interface{}{
		"fullName": "Jane Doe",
		"email":    "jane@school.test",
	})

	var response ErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	assert.Equal(suite.T(), TitleValidationFailed, response.Title)
}

// TestUpdateUser tests update outcomes
func (suite *UserHandlerTestSuite) TestUpdateUser() {
	id := uuid.New()
	body := map[string]interface{}{"fullName": "Jane Roe", "email": "jane@school.test"}

	suite.mockService.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(true, nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/users/"+id.String(), body)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)

	suite.mockService.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(false, nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodPut, "/api/users/"+id.String(), body)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")

	suite.mockService.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(false, apperrors.ErrUserLimitExceeded)
	recorder = suite.httpSuite.MakeRequest(http.MethodPut, "/api/users/"+id.String(), body)
	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestDeleteUser tests deleting a user
func (suite *UserHandlerTestSuite) TestDeleteUser() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(true, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/users/"+id.String(), nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/users/not-a-uuid", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid id")
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
