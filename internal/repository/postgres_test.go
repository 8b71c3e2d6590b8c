//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"eduman-backend/internal/database/models"
	"eduman-backend/internal/requestctx"
	"eduman-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// PostgresRepositoryTestSuite runs the repositories against a real Postgres container
type PostgresRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	ctx           context.Context
	uow           *UnitOfWork
	institutions  *InstitutionRepository
	licenses      *LicenseRepository
	roles         *RoleRepository
	permissions   *PermissionRepository
	users         *UserRepository
}

// SetupSuite runs before all tests in the suite
func (suite *PostgresRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	suite.factories = testutils.NewFactorySet()
	suite.ctx = requestctx.WithActor(context.Background(), "integration@school.test")
	suite.uow = NewUnitOfWork(db)
	suite.institutions = NewInstitutionRepository(db)
	suite.licenses = NewLicenseRepository(db)
	suite.roles = NewRoleRepository(db)
	suite.permissions = NewPermissionRepository(db)
	suite.users = NewUserRepository(db)
}

// TearDownSuite runs after all tests in the suite
func (suite *PostgresRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PostgresRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PostgresRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestDuplicateLicenseKey tests the unique index on license keys
func (suite *PostgresRepositoryTestSuite) TestDuplicateLicenseKey() {
	institution := suite.factories.Institution.Create()
	suite.Require().NoError(suite.institutions.Create(suite.ctx, institution))

	first := suite.factories.License.ForYear(institution.ID, 10, 2025)
	suite.Require().NoError(suite.licenses.Create(suite.ctx, first))

	second := suite.factories.License.ForYear(institution.ID, 10, 2026)
	second.LicenseKey = first.LicenseKey
	err := suite.licenses.Create(suite.ctx, second)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestDateColumnsRoundTrip tests that license dates survive the Postgres date type
func (suite *PostgresRepositoryTestSuite) TestDateColumnsRoundTrip() {
	institution := suite.factories.Institution.Create()
	suite.Require().NoError(suite.institutions.Create(suite.ctx, institution))

	license := suite.factories.License.ForYear(institution.ID, 3, 2027)
	suite.Require().NoError(suite.licenses.Create(suite.ctx, license))

	stored, err := suite.licenses.GetByID(suite.ctx, license.ID)
	suite.Require().NoError(err)
	suite.Equal("2027-01-01", stored.StartDate.String())
	suite.Equal("2027-12-31", stored.EndDate.String())
}

// TestReplacePermissionsInUnitOfWork tests the permission replace against Postgres
func (suite *PostgresRepositoryTestSuite) TestReplacePermissionsInUnitOfWork() {
	role := &models.Role{Name: "integration-" + uuid.NewString()[:8]}
	suite.Require().NoError(suite.roles.Create(suite.ctx, role))
	defer func() { _ = suite.roles.Delete(suite.ctx, role.ID) }()

	perms, err := suite.permissions.GetByNames(suite.ctx, []string{"School.Read", "User.Read"})
	suite.Require().NoError(err)
	suite.Require().Len(perms, 2)

	err = suite.uow.Do(suite.ctx, func(ctx context.Context) error {
		return suite.roles.ReplacePermissions(ctx, role.ID, []uuid.UUID{perms[0].ID, perms[1].ID})
	})
	suite.Require().NoError(err)

	names, err := suite.roles.PermissionNames(suite.ctx, role.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"School.Read", "User.Read"}, names)
}

// TestDeleteInstitutionDetachesUsers tests ON DELETE SET NULL on users
func (suite *PostgresRepositoryTestSuite) TestDeleteInstitutionDetachesUsers() {
	institution := suite.factories.Institution.Create()
	suite.Require().NoError(suite.institutions.Create(suite.ctx, institution))
	user := suite.factories.User.InInstitution(institution.ID)
	suite.Require().NoError(suite.users.Create(suite.ctx, user))

	suite.Require().NoError(suite.institutions.Delete(suite.ctx, institution.ID))

	stored, err := suite.users.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Nil(stored.InstitutionID)
}

// TestPostgresRepositorySuite runs the Postgres repository test suite
func TestPostgresRepositorySuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositoryTestSuite))
}
