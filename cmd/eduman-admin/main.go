package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"eduman-backend/internal/auth"
	"eduman-backend/internal/config"
	"eduman-backend/internal/database"
	"eduman-backend/internal/database/models"
	"eduman-backend/internal/logger"
	"eduman-backend/internal/repository"
	"eduman-backend/internal/requestctx"
	"eduman-backend/internal/seed"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	connectAttempts int
	seedFile        string
	adminEmail      string
	adminPassword   string
	adminName       string
)

func init() {
	rootCmd.PersistentFlags().IntVar(&connectAttempts, "connect-attempts", 30, "Database connection attempts, one second apart")

	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "scripts/data/demo.yaml", "Fixture file to load")

	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Admin email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password")
	createAdminCmd.Flags().StringVar(&adminName, "name", "Administrator", "Admin full name")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(createAdminCmd)
}

var rootCmd = &cobra.Command{
	Use:           "eduman-admin",
	Short:         "Maintenance commands for the EduMan database",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the schema and seed default roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := connect()
		if err != nil {
			return err
		}
		if err := runMigrate(db); err != nil {
			return err
		}
		logrus.WithField("database", cfg.DatabaseName).Info("Schema is up to date")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo fixtures from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := connect()
		if err != nil {
			return err
		}
		_, err = runSeed(cmd.Context(), db, auth.NewBcryptHasher(cfg.BcryptCost), seedFile)
		return err
	},
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an active admin account without an institution",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := connect()
		if err != nil {
			return err
		}
		user, err := runCreateAdmin(cmd.Context(), db, auth.NewBcryptHasher(cfg.BcryptCost), adminName, adminEmail, adminPassword)
		if err != nil {
			return err
		}
		fmt.Printf("Created admin %s (%s)\n", user.Email, user.ID)
		return nil
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// connect loads configuration and opens the database, retrying while Postgres starts
func connect() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	opts := database.OptionsFromConfig(cfg)
	opts.LogLevel = gormlogger.Silent
	opts.SkipMigrate = true
	opts.SeedDefaults = false

	attempts := connectAttempts
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return cfg, db, nil
		}
		if attempt%10 == 0 || attempt == attempts {
			logrus.WithError(err).Warnf("Database not ready (%d/%d)", attempt, attempts)
		}
		if attempt < attempts {
			time.Sleep(time.Second)
		}
	}
	return nil, nil, fmt.Errorf("database not ready after %d attempts", attempts)
}

func runMigrate(db *gorm.DB) error {
	if err := database.Migrate(db); err != nil {
		return err
	}
	return database.SeedDefaults(db)
}

func runSeed(ctx context.Context, db *gorm.DB, hasher auth.PasswordHasher, file string) (*seed.Result, error) {
	fixtures, err := seed.LoadFile(file)
	if err != nil {
		return nil, err
	}
	return seed.NewLoader(db, hasher).Apply(ctx, fixtures)
}

func runCreateAdmin(ctx context.Context, db *gorm.DB, hasher auth.PasswordHasher, name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("email is required")
	}
	if err := auth.ValidatePassword(password); err != nil {
		return nil, err
	}

	users := repository.NewUserRepository(db)
	if _, err := users.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("user %s already exists", email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:     name,
		Email:        email,
		UserName:     email,
		Role:         database.RoleAdmin,
		Status:       models.UserStatusActive,
		PasswordHash: hash,
	}
	ctx = requestctx.WithActor(ctx, "eduman-admin")
	if err := users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return user, nil
}
