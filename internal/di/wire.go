//go:build wireinject
// +build wireinject

package di

import (
	"TraderPulse/pkg/config"
	"TraderPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Upstream clients
		ProvideMarketDataProvider,
		ProvideTextGenerator,

		// Use cases
		ProvideSentimentAnalyzer,
		ProvideStockAggregator,

		// HTTP surface
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
