package testutils

import (
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"eduman-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "eduman"
	pgPassword = "eduman-test"
	pgDatabase = "eduman_test"
)

// tenantTables are emptied between tests; the permission catalogue and default roles survive.
var tenantTables = []string{"users", "classes", "schools", "licenses", "institutions"}

// One Postgres container is shared by every suite in the test binary.
var (
	pgOnce     sync.Once
	pgErr      error
	pgPool     *dockertest.Pool
	pgResource *dockertest.Resource
	pgDB       *gorm.DB
)

// BaseTestSuite gives integration suites a migrated and seeded Postgres database
type BaseTestSuite struct {
	suite.Suite
	DB *gorm.DB
}

// SetupTestSuite starts the shared container on first use and wraps its database.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	pgOnce.Do(func() { pgErr = startPostgres() })
	if pgErr != nil {
		t.Fatalf("failed to start postgres container: %v", pgErr)
	}
	return &BaseTestSuite{DB: pgDB}
}

// CleanupSharedContainer closes the pool and purges the container. Called from TestMain.
func CleanupSharedContainer() {
	if pgDB != nil {
		if sqlDB, err := pgDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		pgDB = nil
	}
	if pgPool == nil || pgResource == nil {
		return
	}

	name := pgResource.Container.Name
	if err := pgPool.Purge(pgResource); err != nil {
		logrus.WithError(err).WithField("container", name).Warn("could not purge postgres container")
	} else {
		logrus.WithField("container", name).Info("purged postgres container")
	}
	pgPool, pgResource = nil, nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite cleans the tables; the container outlives the suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates the tenant tables, ignoring foreign keys while it runs.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	s.DB.Exec(`SET session_replication_role = replica;`)
	for _, table := range tenantTables {
		if m.HasTable(table) {
			s.DB.Exec(`TRUNCATE TABLE "` + table + `" RESTART IDENTITY CASCADE;`)
		}
	}
	s.DB.Exec(`SET session_replication_role = DEFAULT;`)
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	pgPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	pgResource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	if err := pool.Retry(func() error { return connectPostgres(dsn) }); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"port":   port,
		"tables": publicTables(pgDB),
	}).Info("shared postgres ready")
	return nil
}

// connectPostgres pings through pgx first, then opens gorm with migrations and default seeds.
func connectPostgres(dsn string) error {
	std, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer std.Close()
	if err := std.Ping(); err != nil {
		return err
	}

	db, err := database.Initialize(dsn, &database.Options{SeedDefaults: true})
	if err != nil {
		return err
	}
	pgDB = db
	return nil
}

func publicTables(db *gorm.DB) []string {
	var names []string
	db.Raw(`SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename`).Scan(&names)
	return names
}
