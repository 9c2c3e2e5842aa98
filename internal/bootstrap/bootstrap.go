// Package bootstrap wires configuration, logging, the database, and the
// application dependency graph together for the server.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/olamide/gradekeeper/internal/app/controllers"
	appMigrations "github.com/olamide/gradekeeper/internal/app/migrations"
	"github.com/olamide/gradekeeper/internal/app/repositories"
	"github.com/olamide/gradekeeper/internal/app/routes"
	"github.com/olamide/gradekeeper/internal/app/services"
	"github.com/olamide/gradekeeper/internal/config"
	"github.com/olamide/gradekeeper/internal/db"
	"github.com/olamide/gradekeeper/internal/middleware"
	pkgAuth "github.com/olamide/gradekeeper/internal/pkg/auth"
	"github.com/olamide/gradekeeper/internal/pkg/catalog"
	"github.com/olamide/gradekeeper/internal/pkg/filestorage"
	"github.com/olamide/gradekeeper/internal/pkg/helpers"
	"github.com/olamide/gradekeeper/internal/pkg/logger"
	"github.com/olamide/gradekeeper/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *repositories.Repositories
	Services           *services.Services
	AuthController     *controllers.AuthController
	AdminController    *controllers.AdminController
	StudentController  *controllers.StudentController
	TeacherController  *controllers.TeacherController
	GuardianController *controllers.GuardianController
	NewsController     *controllers.NewsController
	AuthMiddleware     *middleware.AuthMiddleware
	JWTService         *pkgAuth.JWTService
	Catalog            *catalog.Catalog
	FileStorage        *filestorage.LocalStorage
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		configPath = env
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "console",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the bootstrap admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// The API stays up; admin endpoints are unreachable until an admin
		// exists, which the logs make loud enough.
		lgr.Error().Err(err).Msg("Failed to seed bootstrap admin")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and
// middleware.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = repositories.NewRepositories(dbPool)
	deps.Catalog = catalog.New(cfg.Catalog.Classes, cfg.Catalog.Subjects, cfg.Catalog.Terms)

	tokenTTL := helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour)
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: tokenTTL,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = storage

	deps.Services = services.NewServices(deps.Repos, deps.JWTService, deps.Catalog, storage)

	deps.AuthController = controllers.NewAuthController(deps.Services.AuthService, tokenTTL)
	deps.AdminController = controllers.NewAdminController(
		deps.Services.AdminService,
		deps.Services.TeacherService,
		deps.Services.StudentService,
		deps.Services.GuardianService,
	)
	deps.StudentController = controllers.NewStudentController(deps.Services.StudentService)
	deps.TeacherController = controllers.NewTeacherController(deps.Services.TeacherService, deps.Services.GradeService, deps.Catalog)
	deps.GuardianController = controllers.NewGuardianController(deps.Services.GuardianService, deps.Services.StudentService)
	deps.NewsController = controllers.NewNewsController(deps.Services.NewsService)
	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService, deps.Repos)

	return deps, nil
}

// SetupRouter builds the gin engine and mounts all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	routes.SetupRouter(
		router,
		deps.AuthController,
		deps.AdminController,
		deps.StudentController,
		deps.TeacherController,
		deps.GuardianController,
		deps.NewsController,
		deps.AuthMiddleware,
	)

	return router
}
