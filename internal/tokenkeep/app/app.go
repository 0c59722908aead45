package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/http"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/service"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/store"
	"github.com/aussiebroadwan/tokenkeep/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application encapsulates the token service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	clientService *service.ClientService
	tokenService  *service.TokenService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	logger, err := slogx.New(slogx.Config{
		Service:       "tokenkeep",
		Version:       BuildVersion,
		Env:           cfg.Env,
		Level:         cfg.LogLevel,
		Format:        cfg.LogFormat,
		File:          cfg.LogFile,
		FileMaxSizeMB: cfg.LogFileMaxSizeMB,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	app := &Application{
		cfg:    cfg,
		logger: logger,
	}

	ctx := slogx.WithContext(context.Background(), app.logger)
	db, err := OpenStore(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	app.db = db
	app.logger.Info("document store ready", "driver", cfg.Database.Driver)

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired router.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("tokenkeep starting",
		"port", app.cfg.Port,
		"token_lifetime", app.cfg.TokenLifetime.String(),
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down tokenkeep...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("tokenkeep stopped")
	return nil
}

func (app *Application) initServices() {
	app.clientService = &service.ClientService{Store: app.db}
	app.tokenService = &service.TokenService{
		Store:        app.db,
		Lifetime:     app.cfg.TokenLifetime,
		SecretLength: app.cfg.TokenLength,
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)
	router.ClientService = app.clientService
	router.TokenService = app.tokenService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
