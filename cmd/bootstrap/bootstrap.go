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

	"prescripto-patient-client/config"
	deliveryHttp "prescripto-patient-client/internal/delivery/http"
	"prescripto-patient-client/internal/delivery/http/handler"
	"prescripto-patient-client/internal/delivery/http/middleware"
	domaingw "prescripto-patient-client/internal/domain/gateway"
	gatewayimpl "prescripto-patient-client/internal/gateway"
	"prescripto-patient-client/internal/infrastructure/cache"
	"prescripto-patient-client/internal/state"
	"prescripto-patient-client/internal/usecase"
	"prescripto-patient-client/pkg/jwt"
	"prescripto-patient-client/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the patient client
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Store       *state.Store
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()
	log := logrus.StandardLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Session token storage: file by default, redis when configured
	var tokens domaingw.TokenStorage
	if cfg.Session.Store == config.SessionStoreRedis {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		tokens = gatewayimpl.NewRedisTokenStorage(redisClient)
	} else {
		tokens = gatewayimpl.NewFileTokenStorage(cfg.Session.TokenFile)
	}

	// Outbound API client. A zero timeout leaves requests on the
	// transport's defaults.
	backend := gatewayimpl.NewBackendClient(cfg.Backend.URL, &http.Client{Timeout: cfg.Backend.Timeout}, log)

	// Shared client state
	store := state.NewStore(backend, tokens, log)
	app.Store = store

	restored := restoreSession(store, tokens, log)

	// Initialize server
	server, err := initializeServer(cfg, store, backend, log)
	if err != nil {
		return nil, err
	}
	app.Server = server

	// Initial fetches, fire-and-forget like the UI mounting: the directory
	// always, the profile only when a session was restored.
	go func() {
		if err := store.RefreshDoctors(context.Background()); err != nil {
			log.Warnf("Initial doctor refresh failed: %v", err)
		}
	}()
	if restored {
		go func() {
			if err := store.RefreshProfile(context.Background()); err != nil {
				log.Warnf("Initial profile refresh failed: %v", err)
			}
		}()
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// restoreSession seeds the store from persisted storage, dropping a token
// whose JWT expiry is already past. Returns whether a live token was
// restored.
func restoreSession(store *state.Store, tokens domaingw.TokenStorage, log *logrus.Logger) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token, err := tokens.Load(ctx)
	if errors.Is(err, domaingw.ErrNoToken) {
		return false
	}
	if err != nil {
		log.Warnf("Failed to load persisted session: %v", err)
		return false
	}
	if jwt.Expired(token, time.Now()) {
		log.Info("Persisted session token is expired, clearing it")
		if err := tokens.Clear(ctx); err != nil {
			log.Warnf("Failed to clear expired session: %v", err)
		}
		return false
	}

	store.RestoreToken(token)
	log.Info("Session restored from storage")
	return true
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, store *state.Store, backend domaingw.Backend, log *logrus.Logger) (*http.Server, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize renderer
	renderer, err := handler.NewRenderer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize usecases
	bookingUsecase := usecase.NewBookingUsecase(backend, store, log)
	profileUsecase := usecase.NewProfileUsecase(backend, store, log)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(store, renderer, cfg.App.CurrencySymbol, log)
	appointmentHandler := handler.NewAppointmentHandler(store, bookingUsecase, renderer, cfg.App.CurrencySymbol, nil, log)
	profileHandler := handler.NewProfileHandler(store, profileUsecase, customValidator, renderer, log)
	sessionHandler := handler.NewSessionHandler(store, renderer, log)

	// Initialize middleware
	logMiddleware := middleware.NewRequestLogMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, appointmentHandler, profileHandler, sessionHandler, logMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Patient client listening on port %s", app.Config.App.Port)
		logrus.Infof("Backend API: %s", app.Config.Backend.URL)
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

	logrus.Info("Shutting down...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Shutdown complete")
}

// Close closes external connections
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
