// Package app wires configuration, logging, metrics, the store and the
// HTTP boundary into one runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"arbapi/internal/config"
	"arbapi/internal/errors"
	"arbapi/internal/infrastructure"
	"arbapi/internal/middleware"
	"arbapi/internal/services"
	"arbapi/internal/store"
	handlers "arbapi/internal/transport/http"
)

// Application represents the main application container
type Application struct {
	Config        *config.Config
	Router        *chi.Mux
	Server        *http.Server
	Logger        *slog.Logger
	Store         *store.Store
	RunService    *services.RunService
	StatusService *services.StatusService
	LogsService   *services.LogsService
	OTelProviders *infrastructure.OTelProviders
	ErrorHandler  *errors.ErrorHandler
}

// NewApplication creates a new application instance with dependency injection
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("application starting",
		slog.String("service", infrastructure.ServiceName),
		slog.String("version", infrastructure.ServiceVersion),
		slog.String("store", cfg.Database.Path))

	otelProviders, err := infrastructure.InitializeOTel(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	app := &Application{
		Config:        cfg,
		Logger:        logger,
		OTelProviders: otelProviders,
	}

	app.initializeServices()
	app.setupRouter()
	app.createServer()

	return app, nil
}

// initializeServices builds the store and the service layer. The store
// opens no connection here; handles appear lazily on first use so a bot
// that has not created its database yet fails per-request, not at boot.
func (a *Application) initializeServices() {
	a.Store = store.New(a.Config.Database.Path, a.Logger)
	a.RunService = services.NewRunService(a.Store, a.Logger)
	a.StatusService = services.NewStatusService(a.Store, a.Logger)
	a.LogsService = services.NewLogsService(a.Config.Logs, a.Logger)
	a.ErrorHandler = errors.NewErrorHandler(a.Logger)
}

// setupRouter configures the HTTP router with all routes
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.StructuredLogger(a.Logger))
	r.Use(middleware.Metrics(a.OTelProviders.Meter))
	r.Use(a.ErrorHandler.Middleware)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/runs", handlers.NewRunHandler(a.RunService, a.Logger, a.ErrorHandler).Routes())
		r.Mount("/status", handlers.NewStatusHandler(a.StatusService, a.Logger, a.ErrorHandler).Routes())
		r.Mount("/logs", handlers.NewLogsHandler(a.LogsService, a.Logger, a.ErrorHandler).Routes())
		r.Mount("/health", handlers.NewHealthHandler().Routes())
	})

	r.Method(http.MethodGet, "/metrics", a.OTelProviders.PrometheusHTTP)

	r.NotFound(a.ErrorHandler.NotFound)
	r.MethodNotAllowed(a.ErrorHandler.MethodNotAllowed)

	a.Router = r
}

// createServer creates the HTTP server
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown completes.
func (a *Application) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("http server listening", slog.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case sig := <-stop:
		a.Logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	if err := a.OTelProviders.Shutdown(ctx); err != nil {
		a.Logger.Warn("metrics shutdown failed", slog.String("error", err.Error()))
	}

	if err := a.Store.Close(); err != nil {
		a.Logger.Warn("store close failed", slog.String("error", err.Error()))
	}

	a.Logger.Info("application stopped")
	return nil
}
