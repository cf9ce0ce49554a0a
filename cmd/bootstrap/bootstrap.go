package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmadeq/test-clinic-demo/config"
	deliveryHttp "github.com/ahmadeq/test-clinic-demo/internal/delivery/http"
	"github.com/ahmadeq/test-clinic-demo/internal/delivery/http/handler"
	"github.com/ahmadeq/test-clinic-demo/internal/delivery/http/middleware"
	"github.com/ahmadeq/test-clinic-demo/internal/storage"
	"github.com/ahmadeq/test-clinic-demo/internal/store"
	"github.com/ahmadeq/test-clinic-demo/internal/usecase"
	"github.com/ahmadeq/test-clinic-demo/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Clinic      *store.Store
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Select the snapshot backend
	snapshots, err := app.newSnapshotStore(cfg)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Snapshot backend: %s", cfg.Storage.Backend)

	// Initialize the clinic state store; a missing or unreadable snapshot
	// falls back to seed data inside Load.
	clinic := store.New(snapshots, logrus.StandardLogger())
	clinic.Load(context.Background())
	app.Clinic = clinic
	logrus.Info("Clinic state loaded")

	// Initialize all layers
	server := initializeServer(cfg, clinic)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func (app *App) newSnapshotStore(cfg *config.Config) (storage.SnapshotStore, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendRedis:
		client, err := storage.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = client
		return storage.NewRedisStore(client, cfg.Storage.RedisKey), nil
	case config.StorageBackendFile:
		return storage.NewFileStore(cfg.Storage.FilePath), nil
	case config.StorageBackendMemory:
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, clinic *store.Store) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(clinic, log)
	visitUsecase := usecase.NewVisitUsecase(clinic, log)
	paymentUsecase := usecase.NewPaymentUsecase(clinic, log)
	analyticsUsecase := usecase.NewAnalyticsUsecase(clinic, log)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	visitHandler := handler.NewVisitHandler(visitUsecase, customValidator)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(patientHandler, visitHandler, paymentHandler, analyticsHandler, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
