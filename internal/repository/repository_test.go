package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"eduman-backend/internal/database"
	"eduman-backend/internal/database/models"
	"eduman-backend/internal/repository"
	"eduman-backend/internal/requestctx"
	"eduman-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RepositoryTestSuite exercises the repositories against an in-memory SQLite database
type RepositoryTestSuite struct {
	suite.Suite
	db           *gorm.DB
	ctx          context.Context
	factories    *testutils.FactorySet
	uow          *repository.UnitOfWork
	institutions *repository.InstitutionRepository
	schools      *repository.SchoolRepository
	classes      *repository.ClassRepository
	licenses     *repository.LicenseRepository
	roles        *repository.RoleRepository
	permissions  *repository.PermissionRepository
	users        *repository.UserRepository
}

// SetupTest runs before each test with a fresh database
func (suite *RepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSeededSQLiteDB(suite.T())
	suite.ctx = requestctx.WithActor(context.Background(), "admin@school.test")
	suite.factories = testutils.NewFactorySet()
	suite.uow = repository.NewUnitOfWork(suite.db)
	suite.institutions = repository.NewInstitutionRepository(suite.db)
	suite.schools = repository.NewSchoolRepository(suite.db)
	suite.classes = repository.NewClassRepository(suite.db)
	suite.licenses = repository.NewLicenseRepository(suite.db)
	suite.roles = repository.NewRoleRepository(suite.db)
	suite.permissions = repository.NewPermissionRepository(suite.db)
	suite.users = repository.NewUserRepository(suite.db)
}

func (suite *RepositoryTestSuite) createInstitution(name string) *models.Institution {
	institution := suite.factories.Institution.WithName(name)
	suite.Require().NoError(suite.institutions.Create(suite.ctx, institution))
	return institution
}

// TestCreateStampsAuditFields tests that creation fields come from the context actor
func (suite *RepositoryTestSuite) TestCreateStampsAuditFields() {
	institution := suite.createInstitution("Audit Academy")

	stored, err := suite.institutions.GetByID(context.Background(), institution.ID)
	suite.Require().NoError(err)
	suite.Equal("admin@school.test", stored.CreatedBy)
	suite.False(stored.CreatedAt.IsZero())
	suite.Nil(stored.ModifiedAt)
	suite.Nil(stored.ModifiedBy)
}

// TestCreateWithoutActorUsesSystem tests the fallback actor
func (suite *RepositoryTestSuite) TestCreateWithoutActorUsesSystem() {
	institution := suite.factories.Institution.Create()
	suite.Require().NoError(suite.institutions.Create(context.Background(), institution))
	suite.Equal(requestctx.SystemActor, institution.CreatedBy)
}

// TestUpdateKeepsCreationFields tests that updates never rewrite creation fields
func (suite *RepositoryTestSuite) TestUpdateKeepsCreationFields() {
	institution := suite.createInstitution("Before")
	createdAt := institution.CreatedAt

	editorCtx := requestctx.WithActor(context.Background(), "editor@school.test")
	institution.Name = "After"
	institution.CreatedBy = "forged@school.test"
	suite.Require().NoError(suite.institutions.Update(editorCtx, institution))

	stored, err := suite.institutions.GetByID(suite.ctx, institution.ID)
	suite.Require().NoError(err)
	suite.Equal("After", stored.Name)
	suite.Equal("admin@school.test", stored.CreatedBy)
	suite.WithinDuration(createdAt, stored.CreatedAt, time.Second)
	suite.Require().NotNil(stored.ModifiedBy)
	suite.Equal("editor@school.test", *stored.ModifiedBy)
	suite.NotNil(stored.ModifiedAt)
}

// TestGetByIDNotFound tests the not-found sentinel
func (suite *RepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.institutions.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	exists, err := suite.institutions.Exists(suite.ctx, uuid.New())
	suite.NoError(err)
	suite.False(exists)
}

// TestGetByTenantID tests tenant lookups
func (suite *RepositoryTestSuite) TestGetByTenantID() {
	institution := suite.createInstitution("Tenant")

	found, err := suite.institutions.GetByTenantID(suite.ctx, institution.TenantID)
	suite.Require().NoError(err)
	suite.Equal(institution.ID, found.ID)
}

// TestDeleteInstitutionCascades tests that children go with their institution and users are detached
func (suite *RepositoryTestSuite) TestDeleteInstitutionCascades() {
	institution := suite.createInstitution("Cascade")
	school := suite.factories.School.Create(institution.ID)
	suite.Require().NoError(suite.schools.Create(suite.ctx, school))
	suite.Require().NoError(suite.classes.Create(suite.ctx, suite.factories.Class.Create(school.ID, "9", "A")))
	suite.Require().NoError(suite.licenses.Create(suite.ctx, suite.factories.License.ForYear(institution.ID, 10, 2025)))
	user := suite.factories.User.InInstitution(institution.ID)
	suite.Require().NoError(suite.users.Create(suite.ctx, user))

	suite.Require().NoError(suite.institutions.Delete(suite.ctx, institution.ID))

	for _, counter := range []interface{ Count(context.Context) (int64, error) }{suite.institutions, suite.schools, suite.classes, suite.licenses} {
		count, err := counter.Count(suite.ctx)
		suite.Require().NoError(err)
		suite.Zero(count)
	}

	detached, err := suite.users.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Nil(detached.InstitutionID)
}

// TestListOrdering tests scoped listings
func (suite *RepositoryTestSuite) TestListOrdering() {
	institution := suite.createInstitution("Ordering")
	other := suite.createInstitution("Other")
	for _, name := range []string{"Zeta School", "Alpha School"} {
		suite.Require().NoError(suite.schools.Create(suite.ctx, suite.factories.School.WithName(institution.ID, name)))
	}
	suite.Require().NoError(suite.schools.Create(suite.ctx, suite.factories.School.WithName(other.ID, "Elsewhere")))

	schools, err := suite.schools.ListByInstitution(suite.ctx, institution.ID)
	suite.Require().NoError(err)
	suite.Require().Len(schools, 2)
	suite.Equal("Alpha School", schools[0].Name)
	suite.Equal("Zeta School", schools[1].Name)

	older := suite.factories.License.ForYear(institution.ID, 5, 2024)
	newer := suite.factories.License.ForYear(institution.ID, 5, 2026)
	suite.Require().NoError(suite.licenses.Create(suite.ctx, older))
	suite.Require().NoError(suite.licenses.Create(suite.ctx, newer))

	licenses, err := suite.licenses.ListByInstitution(suite.ctx, institution.ID)
	suite.Require().NoError(err)
	suite.Require().Len(licenses, 2)
	suite.Equal(newer.ID, licenses[0].ID)
	suite.Equal(models.NewDate(2026, 12, 31), licenses[0].EndDate)

	byKey, err := suite.licenses.GetByKey(suite.ctx, older.LicenseKey)
	suite.Require().NoError(err)
	suite.Equal(older.ID, byKey.ID)
}

// TestReplacePermissions tests that a replace leaves exactly the new set
func (suite *RepositoryTestSuite) TestReplacePermissions() {
	role := &models.Role{Name: "teacher"}
	suite.Require().NoError(suite.roles.Create(suite.ctx, role))

	ab, err := suite.permissions.GetByNames(suite.ctx, []string{"School.Read", "Class.Read"})
	suite.Require().NoError(err)
	suite.Require().Len(ab, 2)
	suite.Require().NoError(suite.roles.ReplacePermissions(suite.ctx, role.ID, []uuid.UUID{ab[0].ID, ab[1].ID}))

	names, err := suite.roles.PermissionNames(suite.ctx, role.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"Class.Read", "School.Read"}, names)

	ac, err := suite.permissions.GetByNames(suite.ctx, []string{"School.Read", "User.Read"})
	suite.Require().NoError(err)
	ids := []uuid.UUID{ac[0].ID, ac[1].ID, ac[0].ID}
	suite.Require().NoError(suite.roles.ReplacePermissions(suite.ctx, role.ID, ids))

	names, err = suite.roles.PermissionNames(suite.ctx, role.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"School.Read", "User.Read"}, names)

	suite.Require().NoError(suite.roles.ReplacePermissions(suite.ctx, role.ID, nil))
	names, err = suite.roles.PermissionNames(suite.ctx, role.ID)
	suite.Require().NoError(err)
	suite.Empty(names)
}

// TestReplacePermissionsRollsBackWithUnitOfWork tests that a failing unit of work restores the old set
func (suite *RepositoryTestSuite) TestReplacePermissionsRollsBackWithUnitOfWork() {
	role := &models.Role{Name: "auditor"}
	suite.Require().NoError(suite.roles.Create(suite.ctx, role))
	initial, err := suite.permissions.GetByNames(suite.ctx, []string{"Report.Read"})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.roles.ReplacePermissions(suite.ctx, role.ID, []uuid.UUID{initial[0].ID}))

	replacement, err := suite.permissions.GetByNames(suite.ctx, []string{"User.Delete"})
	suite.Require().NoError(err)

	boom := errors.New("boom")
	err = suite.uow.Do(suite.ctx, func(ctx context.Context) error {
		if err := suite.roles.ReplacePermissions(ctx, role.ID, []uuid.UUID{replacement[0].ID}); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	names, err := suite.roles.PermissionNames(suite.ctx, role.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"Report.Read"}, names)
}

// TestUnitOfWork tests commit, rollback and nesting
func (suite *RepositoryTestSuite) TestUnitOfWork() {
	committed := suite.factories.Institution.WithName("Committed")
	err := suite.uow.Do(suite.ctx, func(ctx context.Context) error {
		suite.True(repository.InTransaction(ctx))
		return suite.uow.Do(ctx, func(inner context.Context) error {
			return suite.institutions.Create(inner, committed)
		})
	})
	suite.Require().NoError(err)

	rolledBack := suite.factories.Institution.WithName("Rolled back")
	err = suite.uow.Do(suite.ctx, func(ctx context.Context) error {
		if err := suite.institutions.Create(ctx, rolledBack); err != nil {
			return err
		}
		return errors.New("abort")
	})
	suite.Error(err)

	count, err := suite.institutions.Count(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
	suite.False(repository.InTransaction(suite.ctx))
}

// TestUserListFilters tests institution, role, status and free-text filters
func (suite *RepositoryTestSuite) TestUserListFilters() {
	institution := suite.createInstitution("Filters")

	alice := suite.factories.User.InInstitution(institution.ID)
	alice.FullName = "Alice Smith"
	alice.Role = "Teacher"
	bob := suite.factories.User.InInstitution(institution.ID)
	bob.FullName = "Bob Jones"
	bob.Status = models.UserStatusInactive
	carol := suite.factories.User.Create()
	carol.FullName = "Carol 100%"
	carol.Email = "carol@elsewhere.test"
	for _, u := range []*models.User{alice, bob, carol} {
		suite.Require().NoError(suite.users.Create(suite.ctx, u))
	}

	testCases := []struct {
		name   string
		filter repository.UserFilter
		want   []string
	}{
		{"no filter", repository.UserFilter{}, []string{"Alice Smith", "Bob Jones", "Carol 100%"}},
		{"institution", repository.UserFilter{InstitutionID: &institution.ID}, []string{"Alice Smith", "Bob Jones"}},
		{"role case insensitive", repository.UserFilter{Role: "teacher"}, []string{"Alice Smith"}},
		{"status case insensitive", repository.UserFilter{Status: "INACTIVE"}, []string{"Bob Jones"}},
		{"query on name", repository.UserFilter{Query: "smi"}, []string{"Alice Smith"}},
		{"query on email", repository.UserFilter{Query: "ELSEWHERE"}, []string{"Carol 100%"}},
		{"query escapes wildcards", repository.UserFilter{Query: "100%"}, []string{"Carol 100%"}},
		{"combined", repository.UserFilter{InstitutionID: &institution.ID, Query: "carol"}, nil},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			users, err := suite.users.List(suite.ctx, tc.filter)
			suite.Require().NoError(err)
			var names []string
			for _, u := range users {
				names = append(names, u.FullName)
			}
			suite.Equal(tc.want, names)
		})
	}
}

// TestGetByEmailCaseInsensitive tests email lookups
func (suite *RepositoryTestSuite) TestGetByEmailCaseInsensitive() {
	user := suite.factories.User.Create()
	user.Email = "mixed@school.test"
	suite.Require().NoError(suite.users.Create(suite.ctx, user))

	found, err := suite.users.GetByEmail(suite.ctx, " MIXED@school.test ")
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)

	_, err = suite.users.GetByEmail(suite.ctx, "nobody@school.test")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestRoleLookups tests role queries and role deletion cascade
func (suite *RepositoryTestSuite) TestRoleLookups() {
	admin, err := suite.roles.GetByName(suite.ctx, database.RoleAdmin)
	suite.Require().NoError(err)

	roles, err := suite.roles.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(roles, 2)

	suite.Require().NoError(suite.roles.Delete(suite.ctx, admin.ID))

	var links int64
	suite.Require().NoError(suite.db.Model(&models.RolePermission{}).Where("role_id = ?", admin.ID).Count(&links).Error)
	suite.Zero(links)

	all, err := suite.permissions.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(all, len(database.DefaultPermissions()))
}

// TestRepositorySuite runs the repository test suite
func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
