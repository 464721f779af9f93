package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ehr-vaccine-service/config"
	deliveryHttp "ehr-vaccine-service/internal/delivery/http"
	"ehr-vaccine-service/internal/delivery/http/handler"
	"ehr-vaccine-service/internal/delivery/http/middleware"
	"ehr-vaccine-service/internal/infrastructure/cache"
	"ehr-vaccine-service/internal/infrastructure/database"
	"ehr-vaccine-service/internal/repository"
	"ehr-vaccine-service/internal/service"
	"ehr-vaccine-service/internal/usecase"
	"ehr-vaccine-service/pkg/jwt"
	"ehr-vaccine-service/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	log := setupLogger(cfg.App.LogLevel)
	app := &App{Config: cfg, Log: log}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	app.Server = initializeServer(cfg, log, db, redisClient)

	return app, nil
}

// Seed migrates the schema and loads the reference schedule table.
// It needs the database only.
func Seed(ctx context.Context, cfg *config.Config) error {
	log := setupLogger(cfg.App.LogLevel)

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Schema migrated")

	seedService := service.NewSeedService(
		db,
		log,
		cfg.Seed,
		repository.NewRoleRepository(),
		repository.NewUserRepository(),
		repository.NewVaccineScheduleRepository(),
		repository.NewCVXCodeRepository(),
	)
	return seedService.Seed(ctx)
}

func setupLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	tokenStore := cache.NewTokenStore(redisClient)

	// Repositories
	userRepo := repository.NewUserRepository()
	scheduleRepo := repository.NewVaccineScheduleRepository()
	patientRepo := repository.NewPatientRepository()
	cvxRepo := repository.NewCVXCodeRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(db, log, auditLogRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, tokenStore, auditService)
	vaccineUsecase := usecase.NewVaccineUsecase(db, log, scheduleRepo, patientRepo, cvxRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	vaccineHandler := handler.NewVaccineHandler(vaccineUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(log)

	router := deliveryHttp.NewRouter(
		authHandler,
		vaccineHandler,
		patientHandler,
		auditLogHandler,
		authMiddleware,
		loggingMiddleware,
		recoveryMiddleware,
	)
	httpRouter := router.Setup()

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           corsMiddleware.Handle(httpRouter),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and blocks until shutdown completes.
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()
	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
