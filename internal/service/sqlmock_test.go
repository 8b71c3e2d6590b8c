package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"eduman-backend/internal/config"
	"eduman-backend/internal/repository"
	"eduman-backend/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestLicenseGuardLocksLicenseInsideTransaction(t *testing.T) {
	db, mock := newMockPostgres(t)
	institutionID := uuid.New()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "licenses" WHERE institution_id = .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "institution_id", "license_key", "user_limit", "start_date", "end_date"}).
			AddRow(uuid.NewString(), institutionID.String(), "LIC-1", 2,
				time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE institution_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	guard := service.NewLicenseGuard(db, config.QuotaScopeInstitution).WithClock(func() time.Time { return now })
	var result *service.GuardResult
	err := repository.NewUnitOfWork(db).Do(context.Background(), func(ctx context.Context) error {
		var err error
		result, err = guard.EnsureUserCanBeCreated(ctx, institutionID)
		return err
	})

	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 2, result.License.UserLimit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLicenseGuardPropagatesQueryErrors(t *testing.T) {
	db, mock := newMockPostgres(t)
	mock.ExpectQuery(`FROM "licenses"`).WillReturnError(errors.New("connection reset"))

	result, err := service.NewLicenseGuard(db, config.QuotaScopeGlobal).EnsureUserCanBeCreated(context.Background(), uuid.New())

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "failed to load license")
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportSummaryPropagatesQueryErrors(t *testing.T) {
	db, mock := newMockPostgres(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) AS count, COALESCE\(SUM\(user_limit\), 0\) AS capacity FROM "licenses"`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "capacity"}).AddRow(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "institutions"`).WillReturnError(errors.New("statement timeout"))

	summary, err := service.NewReportService(db).GetSummary(context.Background(), service.ReportFilter{})

	assert.Nil(t, summary)
	assert.ErrorContains(t, err, "failed to list institutions")
	assert.NoError(t, mock.ExpectationsWereMet())
}
