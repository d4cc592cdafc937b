package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	portssvc "github.com/retailops/pos_shift_backend/internal/core/ports/services"
	"github.com/retailops/pos_shift_backend/internal/core/services"
	"github.com/retailops/pos_shift_backend/internal/dto"
	"github.com/retailops/pos_shift_backend/internal/handlers"
	"github.com/retailops/pos_shift_backend/internal/middleware"
	"github.com/retailops/pos_shift_backend/internal/platform/cache"
	"github.com/retailops/pos_shift_backend/internal/repositories/database/pgsql"
	"github.com/retailops/pos_shift_backend/pkg/config"
	"github.com/retailops/pos_shift_backend/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title POS Shift Backend API
// @version 1.0
// @description Shift opening, closing reconciliation and reporting for POS front ends.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Settings cache: redis when configured, otherwise in-process. A
	// non-positive TTL disables caching entirely.
	var settingsCache cache.SettingsCache
	if cfg.SettingsCacheTTL <= 0 {
		settingsCache = cache.NoopSettingsCache{}
		logger.Info("Settings caching disabled.")
	} else if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisSettingsCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisCache.Ping(context.Background()); err != nil {
			logger.Warn("Redis unreachable, falling back to in-process settings cache", slog.String("error", err.Error()))
			settingsCache = cache.NewMemorySettingsCache()
		} else {
			defer redisCache.Close()
			settingsCache = redisCache
			logger.Info("Redis settings cache connected.", slog.String("addr", cfg.RedisAddr))
		}
	} else {
		settingsCache = cache.NewMemorySettingsCache()
	}

	// Repositories
	shiftRepo := pgsql.NewShiftRepository(dbPool)
	invoiceRepo := pgsql.NewInvoiceRepository(dbPool)
	reportingRepo := pgsql.NewReportingRepository(dbPool)
	settingsRepo := pgsql.NewSettingsRepository(dbPool)
	userRepo := pgsql.NewUserRepository(dbPool)

	// Services
	settingsSvc := services.NewSettingsService(settingsRepo, settingsCache, cfg.SettingsCacheTTL, cfg.DefaultCashMode)
	invoiceSvc := services.NewInvoiceService(invoiceRepo, shiftRepo, settingsRepo)
	serviceContainer := &portssvc.ServiceContainer{
		OpeningShift: services.NewOpeningShiftService(shiftRepo),
		ClosingShift: services.NewClosingShiftService(shiftRepo, invoiceSvc, settingsSvc),
		Invoice:      invoiceSvc,
		Reporting:    services.NewReportingService(reportingRepo, shiftRepo),
		User:         services.NewUserService(userRepo),
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, rate limiting, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("Origin", "Content-Type", "Authorization")
	r.Use(cors.New(corsConfig))

	// Request payload validations beyond struct tags
	dto.RegisterValidations()

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies pending SQL migrations over a temporary database/sql
// connection using the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
