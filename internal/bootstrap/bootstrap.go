package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/hrdirectory/internal/app/controllers"
	appMigrations "github.com/yigit/hrdirectory/internal/app/migrations"
	appRepos "github.com/yigit/hrdirectory/internal/app/repositories"
	appRoutes "github.com/yigit/hrdirectory/internal/app/routes"
	appServices "github.com/yigit/hrdirectory/internal/app/services"
	"github.com/yigit/hrdirectory/internal/config"
	"github.com/yigit/hrdirectory/internal/db"
	appMiddleware "github.com/yigit/hrdirectory/internal/middleware"
	"github.com/yigit/hrdirectory/internal/pkg/apperrors"
	"github.com/yigit/hrdirectory/internal/pkg/logger"
	"github.com/yigit/hrdirectory/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	DB                   *db.PostgresDB
	Repos                *appRepos.Repositories
	DepartmentService    appServices.DepartmentService // Interface type
	EmployeeService      appServices.EmployeeService   // Interface type
	DepartmentController *appControllers.DepartmentController
	EmployeeController   *appControllers.EmployeeController
	HealthController     *appControllers.HealthController
	Metrics              *appMiddleware.Metrics // nil when metrics are disabled
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// CONFIG_PATH overrides the default configs/config.yaml.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath, ".env")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and, unless disabled,
// recreates the schema with the default rows.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if !cfg.Database.Bootstrap {
		lgr.Warn().Msg("Schema bootstrap disabled, using existing tables")
		return database, nil
	}

	if err := BootstrapSchema(ctx, database, lgr); err != nil {
		lgr.Error().Err(err).Msg("Database bootstrap error")
		database.Close()
		return nil, err
	}

	return database, nil
}

// BootstrapSchema drops and recreates both tables and inserts the default rows
// in one transaction. On failure the previous schema and data are left untouched.
func BootstrapSchema(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Warn().Msg("Recreating schema, existing departments and employees will be lost")

	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := appMigrations.NewMigrator(tx, lgr).Reset(ctx); err != nil {
			return fmt.Errorf("%w: %w", apperrors.ErrBootstrapFailed, err)
		}
		if err := seed.CreateDefaultData(ctx, tx, lgr); err != nil {
			return fmt.Errorf("%w: %w", apperrors.ErrSeedFailed, err)
		}
		return nil
	})
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{DB: database, Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.EmployeeService = appServices.NewEmployeeService(deps.Repos.EmployeeRepository)

	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.EmployeeController = appControllers.NewEmployeeController(deps.EmployeeService, cfg.API.MissingRowPolicy)
	deps.HealthController = appControllers.NewHealthController(database)

	if cfg.Server.MetricsEnabled {
		deps.Metrics = appMiddleware.NewMetrics()
		deps.Metrics.RegisterPool(database.Pool)
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch {
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case strings.EqualFold(cfg.Server.Mode, gin.TestMode):
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.Chain(lgr, cfg.Server.CORSOrigins, deps.Metrics)...)

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.DepartmentController,
		deps.EmployeeController,
		deps.HealthController,
	)

	return router
}
