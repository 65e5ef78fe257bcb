//go:build wireinject
// +build wireinject

package di

import (
	"GemScout/pkg/config"
	"GemScout/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideHTTPClient,
		ProvidePulseCache,
		ProvideStateStore,
		ProvideCatalog,
		ProvideCredentials,

		// Services
		ProvideAnalyzer,

		// Use cases
		ProvideOrchestrator,

		// HTTP surface
		ProvideHandlers,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
