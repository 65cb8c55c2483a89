package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	domrepo "github.com/Dhruvg12/financial-app/internal/domain/repository"
	"github.com/Dhruvg12/financial-app/pkg/config"
	xhttp "github.com/Dhruvg12/financial-app/pkg/http"
	applogger "github.com/Dhruvg12/financial-app/pkg/logger"
)

// App encapsulates the application lifecycle: HTTP server up, wait for a
// signal, drain, close the user store.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    xhttp.Handler
	users      domrepo.UserStore
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler, users domrepo.UserStore) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		handler: handler,
		users:   users,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout.Std(), a.cfg.Server.WriteTimeout.Std(), a.cfg.Server.ShutdownTimeout.Std()),
		xhttp.WithCORS(a.cfg.Server.CORS),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("env", a.cfg.Environment),
	)

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout.Std())
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.users != nil {
		if err := a.users.Close(); err != nil {
			a.logger.Warn("user store close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
