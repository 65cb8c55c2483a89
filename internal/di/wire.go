//go:build wireinject
// +build wireinject

package di

import (
	"github.com/Dhruvg12/financial-app/pkg/config"
	"github.com/Dhruvg12/financial-app/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideUserStore,
		ProvideHistory,

		// Services
		ProvideAuthService,

		// Use cases
		ProvideHistoryUseCase,
		ProvideSimulationUseCase,

		// HTTP
		ProvideGuard,
		ProvideHTTPHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
