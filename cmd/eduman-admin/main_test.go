package main

import (
	"context"
	"testing"

	"eduman-backend/internal/auth"
	"eduman-backend/internal/database"
	"eduman-backend/internal/database/models"
	"eduman-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrateIsRepeatable(t *testing.T) {
	db := testutils.NewSQLiteDB(t)

	require.NoError(t, runMigrate(db))
	require.NoError(t, runMigrate(db))

	var permissions int64
	require.NoError(t, db.Model(&models.Permission{}).Count(&permissions).Error)
	assert.Equal(t, int64(len(database.DefaultPermissions())), permissions)
}

func TestRunSeed(t *testing.T) {
	db := testutils.NewSQLiteDB(t)

	result, err := runSeed(context.Background(), db, auth.NewBcryptHasher(4), "../../internal/seed/testdata/demo.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Institutions)

	_, err = runSeed(context.Background(), db, auth.NewBcryptHasher(4), "missing.yaml")
	assert.Error(t, err)
}

func TestRunCreateAdmin(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	hasher := auth.NewBcryptHasher(4)

	user, err := runCreateAdmin(context.Background(), db, hasher, "Root", " Root@School.test ", "Secret#123")
	require.NoError(t, err)
	assert.Equal(t, "root@school.test", user.Email)
	assert.Equal(t, database.RoleAdmin, user.Role)
	assert.Nil(t, user.InstitutionID)
	assert.Equal(t, "eduman-admin", user.CreatedBy)
	assert.True(t, hasher.Compare(user.PasswordHash, "Secret#123"))

	_, err = runCreateAdmin(context.Background(), db, hasher, "Root", "root@school.test", "Secret#123")
	assert.ErrorContains(t, err, "already exists")

	_, err = runCreateAdmin(context.Background(), db, hasher, "Weak", "weak@school.test", "short")
	var policyErr *auth.PasswordPolicyError
	assert.ErrorAs(t, err, &policyErr)
}
