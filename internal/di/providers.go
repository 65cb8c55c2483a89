package di

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/Dhruvg12/financial-app/internal/domain/repository"
	"github.com/Dhruvg12/financial-app/internal/handler/api"
	mid "github.com/Dhruvg12/financial-app/internal/middleware"
	internalrepo "github.com/Dhruvg12/financial-app/internal/repository"
	"github.com/Dhruvg12/financial-app/internal/service/auth"
	"github.com/Dhruvg12/financial-app/internal/service/yahoo"
	"github.com/Dhruvg12/financial-app/internal/usecase"
	"github.com/Dhruvg12/financial-app/pkg/config"
	xhttp "github.com/Dhruvg12/financial-app/pkg/http"
	applogger "github.com/Dhruvg12/financial-app/pkg/logger"
	"github.com/Dhruvg12/financial-app/pkg/metrics"
	"github.com/Dhruvg12/financial-app/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideUserStore opens the SQLite user store.
func ProvideUserStore(cfg *config.Config) (repository.UserStore, error) {
	store, err := internalrepo.NewSQLiteUserStore(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("user store: %w", err)
	}
	return store, nil
}

// ProvideHistory creates the Yahoo Finance provider gateway.
func ProvideHistory(cfg *config.Config) repository.History {
	return yahoo.New(cfg.Provider.BaseURL, cfg.Provider.Timeout.Std(), cfg.Provider.UserAgent)
}

// ProvideAuthService creates the token issuing/verifying service.
func ProvideAuthService(cfg *config.Config, users repository.UserStore) *auth.Service {
	return auth.New(users, cfg.Auth.Secret, cfg.Auth.TokenTTL.Std())
}

// ProvideHistoryUseCase creates the history use case.
func ProvideHistoryUseCase(provider repository.History, m repository.Metrics) *usecase.HistoryUseCase {
	return usecase.NewHistoryUseCase(provider, m)
}

// ProvideSimulationUseCase creates the growth simulation use case.
func ProvideSimulationUseCase(provider repository.History, m repository.Metrics) *usecase.SimulationUseCase {
	return usecase.NewSimulationUseCase(provider, m)
}

// ProvideGuard creates the bearer-token middleware.
func ProvideGuard(svc *auth.Service) echo.MiddlewareFunc {
	return mid.BearerAuth(svc)
}

// ProvideHTTPHandler assembles the route registrar.
func ProvideHTTPHandler(
	l *applogger.Logger,
	hist *usecase.HistoryUseCase,
	sim *usecase.SimulationUseCase,
	svc *auth.Service,
	guard echo.MiddlewareFunc,
) xhttp.Handler {
	market := api.NewMarketHandler(l, hist, sim)
	authH := api.NewAuthHandler(l, svc)
	return api.NewRouter(market, authH, guard)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	users repository.UserStore,
) *server.App {
	return server.New(cfg, l, handler, users)
}
