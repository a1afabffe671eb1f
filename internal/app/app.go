package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/technicaltest/vehicle-inventory-service/internal/adapter/handler/http"
	"github.com/technicaltest/vehicle-inventory-service/internal/adapter/logger"
	"github.com/technicaltest/vehicle-inventory-service/internal/adapter/postgres"
	"github.com/technicaltest/vehicle-inventory-service/internal/adapter/prometheus"
	"github.com/technicaltest/vehicle-inventory-service/internal/config"
	"github.com/technicaltest/vehicle-inventory-service/internal/core/ports"
	"github.com/technicaltest/vehicle-inventory-service/internal/core/services"

	"github.com/pressly/goose"
)

type App struct {
	Config     *config.Container
	Logger     ports.LoggerPort
	DB         *sql.DB
	HTTPRouter *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Connect DB
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Migrate DB
	if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Validate
	validate, err := services.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to build validator: %w", err)
	}

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Repositories
	brandRepo := postgres.NewBrandRepository(db)
	vehicleRepo := postgres.NewVehicleRepository(db)

	// Services
	brandService := services.NewBrandService(brandRepo, loggerAdapter, validate)
	vehicleService := services.NewVehicleService(vehicleRepo, brandService, loggerAdapter, validate)

	// HTTP Handlers
	brandHandler := http.NewBrandHandler(brandService, loggerAdapter, metrics)
	vehicleHandler := http.NewVehicleHandler(vehicleService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		brandHandler,
		vehicleHandler,
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:     cfg,
		Logger:     loggerAdapter,
		DB:         db,
		HTTPRouter: router,
	}, nil
}

// Runs all services
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	// Close database
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Database close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
