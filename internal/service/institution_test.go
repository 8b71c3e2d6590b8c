package service_test

import (
	"context"
	"errors"
	"testing"

	"eduman-backend/internal/database/models"
	apperrors "eduman-backend/internal/errors"
	"eduman-backend/internal/mocks"
	"eduman-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// InstitutionServiceTestSuite defines the test suite for InstitutionService
type InstitutionServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	mockUoW  *mocks.MockUnitOfWorkInterface
	mockRepo *mocks.MockInstitutionRepositoryInterface
	service  *service.InstitutionService
}

// SetupTest sets up the test suite
func (suite *InstitutionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUoW = mocks.NewMockUnitOfWorkInterface(suite.ctrl)
	suite.mockRepo = mocks.NewMockInstitutionRepositoryInterface(suite.ctrl)
	suite.service = service.NewInstitutionService(suite.mockUoW, suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *InstitutionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateGeneratesTenantID tests that an omitted tenant id is generated
func (suite *InstitutionServiceTestSuite) TestCreateGeneratesTenantID() {
	expectUnitOfWork(suite.mockUoW)
	suite.mockRepo.EXPECT().GetByTenantID(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	institution, err := suite.service.Create(suite.ctx, &service.CreateInstitutionRequest{Name: "Northside"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Northside", institution.Name)
	assert.NotEqual(suite.T(), uuid.Nil, institution.TenantID)
}

// TestCreateKeepsGivenTenantID tests that a supplied tenant id is used as is
func (suite *InstitutionServiceTestSuite) TestCreateKeepsGivenTenantID() {
	tenant := uuid.New()
	expectUnitOfWork(suite.mockUoW)
	suite.mockRepo.EXPECT().GetByTenantID(gomock.Any(), tenant).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, i *models.Institution) error {
			assert.Equal(suite.T(), tenant, i.TenantID)
			return nil
		})

	_, err := suite.service.Create(suite.ctx, &service.CreateInstitutionRequest{Name: "Northside", TenantID: &tenant})
	suite.NoError(err)
}

// TestCreateDuplicateTenant tests the tenant uniqueness check
func (suite *InstitutionServiceTestSuite) TestCreateDuplicateTenant() {
	tenant := uuid.New()
	expectUnitOfWork(suite.mockUoW)
	suite.mockRepo.EXPECT().GetByTenantID(gomock.Any(), tenant).Return(&models.Institution{TenantID: tenant}, nil)

	institution, err := suite.service.Create(suite.ctx, &service.CreateInstitutionRequest{Name: "Northside", TenantID: &tenant})

	assert.Nil(suite.T(), institution)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInstitutionExists)
}

// TestCreateValidationError tests that invalid requests never reach the database
func (suite *InstitutionServiceTestSuite) TestCreateValidationError() {
	kind := models.InstitutionType("military")
	testCases := []struct {
		name string
		req  *service.CreateInstitutionRequest
	}{
		{"missing name", &service.CreateInstitutionRequest{}},
		{"unknown type", &service.CreateInstitutionRequest{Name: "X", Type: &kind}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.service.Create(suite.ctx, tc.req)
			suite.ErrorContains(err, "validation failed")
		})
	}
}

// TestGetByIDNotFound tests the not-found mapping
func (suite *InstitutionServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(suite.ctx, id)
	suite.ErrorIs(err, apperrors.ErrInstitutionNotFound)
}

// TestUpdate tests that name, address and type are overwritten
func (suite *InstitutionServiceTestSuite) TestUpdate() {
	id := uuid.New()
	address := "2 Side Street"
	stored := &models.Institution{BaseModel: models.BaseModel{ID: id}, Name: "Old", TenantID: uuid.New()}

	expectUnitOfWork(suite.mockUoW)
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(stored, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any(), stored).
		DoAndReturn(func(_ context.Context, i *models.Institution) error {
			assert.Equal(suite.T(), "New", i.Name)
			assert.Equal(suite.T(), &address, i.Address)
			return nil
		})

	found, err := suite.service.Update(suite.ctx, id, &service.UpdateInstitutionRequest{Name: "New", Address: &address})
	suite.NoError(err)
	suite.True(found)
}

// TestUpdateNotFound tests that a missing institution is reported as not found
func (suite *InstitutionServiceTestSuite) TestUpdateNotFound() {
	id := uuid.New()
	expectUnitOfWork(suite.mockUoW)
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	found, err := suite.service.Update(suite.ctx, id, &service.UpdateInstitutionRequest{Name: "New"})
	suite.NoError(err)
	suite.False(found)
}

// TestDelete tests removal of an existing institution
func (suite *InstitutionServiceTestSuite) TestDelete() {
	id := uuid.New()
	expectUnitOfWork(suite.mockUoW)
	suite.mockRepo.EXPECT().Exists(gomock.Any(), id).Return(true, nil)
	suite.mockRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	found, err := suite.service.Delete(suite.ctx, id)
	suite.NoError(err)
	suite.True(found)
}

// TestDeleteNotFound tests that deleting a missing institution is not an error
func (suite *InstitutionServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	expectUnitOfWork(suite.mockUoW)
	suite.mockRepo.EXPECT().Exists(gomock.Any(), id).Return(false, nil)

	found, err := suite.service.Delete(suite.ctx, id)
	suite.NoError(err)
	suite.False(found)
}

// TestDeletePropagatesErrors tests that persistence failures surface as errors
func (suite *InstitutionServiceTestSuite) TestDeletePropagatesErrors() {
	id := uuid.New()
	expectUnitOfWork(suite.mockUoW)
	suite.mockRepo.EXPECT().Exists(gomock.Any(), id).Return(true, nil)
	suite.mockRepo.EXPECT().Delete(gomock.Any(), id).Return(errors.New("disk full"))

	found, err := suite.service.Delete(suite.ctx, id)
	suite.True(found)
	suite.ErrorContains(err, "failed to delete institution: disk full")
}

// TestList tests listing institutions
func (suite *InstitutionServiceTestSuite) TestList() {
	suite.mockRepo.EXPECT().List(gomock.Any()).Return([]models.Institution{{Name: "A"}, {Name: "B"}}, nil)

	institutions, err := suite.service.List(suite.ctx)
	suite.NoError(err)
	suite.Len(institutions, 2)
}

// TestInstitutionServiceTestSuite runs the test suite
func TestInstitutionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InstitutionServiceTestSuite))
}
