package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/cohorttools/cohort-api/internal/app/controllers"
	appMigrations "github.com/cohorttools/cohort-api/internal/app/migrations"
	appRepos "github.com/cohorttools/cohort-api/internal/app/repositories"
	appRoutes "github.com/cohorttools/cohort-api/internal/app/routes"
	appServices "github.com/cohorttools/cohort-api/internal/app/services"
	"github.com/cohorttools/cohort-api/internal/config"
	"github.com/cohorttools/cohort-api/internal/db"
	appMiddleware "github.com/cohorttools/cohort-api/internal/middleware"
	pkgAuth "github.com/cohorttools/cohort-api/internal/pkg/auth"
	"github.com/cohorttools/cohort-api/internal/pkg/logger"
	"github.com/cohorttools/cohort-api/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	CohortService     appServices.CohortService
	StudentService    appServices.StudentService
	UserService       appServices.UserService
	AuthController    *appControllers.AuthController
	CohortController  *appControllers.CohortController
	StudentController *appControllers.StudentController
	UserController    *appControllers.UserController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A local .env file (if present) feeds the env overrides below
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default cohorts.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(ctx, dbPool, lgr); err != nil {
		// Seeding failure is not fatal for startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.AccessTokenTTL(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.CohortService = appServices.NewCohortService(deps.Repos.CohortRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.CohortController = appControllers.NewCohortController(deps.CohortService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.UserController = appControllers.NewUserController(deps.UserService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.CustomRecovery(appMiddleware.RecoveryHandler()))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigin}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CohortController,
		deps.StudentController,
		deps.UserController,
		deps.AuthMiddleware,
	)

	return router
}
