package testutils

import (
	"fmt"
	"testing"

	"eduman-backend/internal/database"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB returns a migrated, isolated in-memory database for fast unit tests.
// A single connection is used so the in-memory database survives between statements.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn), &database.Options{
		LogLevel:     logger.Silent,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewSeededSQLiteDB is NewSQLiteDB plus the default permissions and roles.
func NewSeededSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	db := NewSQLiteDB(t)
	if err := database.SeedDefaults(db); err != nil {
		t.Fatalf("failed to seed sqlite test database: %v", err)
	}
	return db
}
