package routes

import (
	"fmt"

	"eduman-backend/internal/api/handlers"
	"eduman-backend/internal/api/middleware"
	"eduman-backend/internal/auth"
	"eduman-backend/internal/config"
	"eduman-backend/internal/metrics"
	"eduman-backend/internal/repository"
	"eduman-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if cfg.MetricsEnabled {
		router.Use(metrics.Middleware())
	}

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	uow := repository.NewUnitOfWork(db)
	institutionRepo := repository.NewInstitutionRepository(db)
	schoolRepo := repository.NewSchoolRepository(db)
	classRepo := repository.NewClassRepository(db)
	licenseRepo := repository.NewLicenseRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize auth configuration and services
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo, validator)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize services
	guard := service.NewLicenseGuard(db, cfg.LicenseQuotaScope)
	institutionService := service.NewInstitutionService(uow, institutionRepo, validator)
	schoolService := service.NewSchoolService(uow, schoolRepo, institutionRepo, validator)
	classService := service.NewClassService(uow, classRepo, schoolRepo, validator)
	licenseService := service.NewLicenseService(uow, licenseRepo, institutionRepo, validator)
	roleService := service.NewRoleService(uow, roleRepo, permissionRepo, validator)
	permissionService := service.NewPermissionService(permissionRepo)
	userService := service.NewUserService(uow, userRepo, institutionRepo, guard, authService.Hasher(), validator)
	reportService := service.NewReportService(db)
	dashboardService := service.NewDashboardService(institutionRepo, schoolRepo, classRepo, licenseRepo, userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	institutionHandler := handlers.NewInstitutionHandler(institutionService)
	schoolHandler := handlers.NewSchoolHandler(schoolService, classService)
	licenseHandler := handlers.NewLicenseHandler(licenseService)
	roleHandler := handlers.NewRoleHandler(roleService, permissionService)
	userHandler := handlers.NewUserHandler(userService)
	reportHandler := handlers.NewReportHandler(reportService, dashboardService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes are public and throttled per client IP
	authGroup := router.Group("/api/auth")
	{
		throttle := middleware.RateLimit(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)
		authGroup.POST("/register", throttle, authHandler.Register)
		authGroup.POST("/login", throttle, authHandler.Login)
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	// Everything else under /api requires a bearer token
	api := router.Group("/api")
	api.Use(authMiddleware.RequireAuth())
	{
		institutions := api.Group("/institutions")
		{
			institutions.GET("", institutionHandler.ListInstitutions)
			institutions.GET("/:id", institutionHandler.GetInstitution)
			institutions.POST("", institutionHandler.CreateInstitution)
			institutions.PUT("/:id", institutionHandler.UpdateInstitution)
			institutions.DELETE("/:id", institutionHandler.DeleteInstitution)
		}

		schools := api.Group("/schools")
		{
			schools.GET("/institution/:institutionId", schoolHandler.ListSchools)
			schools.GET("/:id", schoolHandler.GetSchool)
			schools.POST("", schoolHandler.CreateSchool)
			schools.PUT("/:id", schoolHandler.UpdateSchool)
			schools.DELETE("/:id", schoolHandler.DeleteSchool)
		}

		classes := api.Group("/classes")
		{
			classes.GET("/school/:schoolId", schoolHandler.ListClasses)
			classes.POST("", schoolHandler.CreateClass)
			classes.DELETE("/:id", schoolHandler.DeleteClass)
		}

		licenses := api.Group("/licenses")
		{
			licenses.GET("/institution/:institutionId", licenseHandler.ListLicenses)
			licenses.POST("", licenseHandler.CreateLicense)
			licenses.DELETE("/:id", licenseHandler.DeleteLicense)
		}

		roles := api.Group("/roles")
		{
			roles.GET("", roleHandler.ListRoles)
			roles.POST("", roleHandler.CreateRole)
			roles.PUT("/:id", roleHandler.UpdateRole)
			roles.DELETE("/:id", roleHandler.DeleteRole)
			roles.GET("/:id/permissions", roleHandler.GetRolePermissions)
			roles.PUT("/:id/permissions", roleHandler.ReplaceRolePermissions)
		}

		api.GET("/permissions", roleHandler.ListPermissions)

		users := api.Group("/users")
		{
			users.GET("/me", userHandler.GetCurrentUser)
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/summary", reportHandler.GetSummary)
			reports.GET("/download", reportHandler.Download)
		}

		api.GET("/dashboard/overview", reportHandler.Overview)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
