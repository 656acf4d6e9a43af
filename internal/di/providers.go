package di

import (
	"fmt"

	"TraderPulse/internal/domain/repository"
	"TraderPulse/internal/handler/api"
	"TraderPulse/internal/service/alphavantage"
	"TraderPulse/internal/service/gemini"
	"TraderPulse/internal/service/yahoo"
	"TraderPulse/internal/usecase"
	"TraderPulse/pkg/config"
	xhttp "TraderPulse/pkg/http"
	applogger "TraderPulse/pkg/logger"
	"TraderPulse/pkg/metrics"
	"TraderPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
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

// ProvideMarketDataProvider selects the active provider variant at startup.
// Business logic never branches on the provider type again.
func ProvideMarketDataProvider(cfg *config.Config) (repository.MarketDataProvider, error) {
	switch cfg.Provider.Type {
	case "alphavantage":
		client := xhttp.NewClient(xhttp.WithTimeout(cfg.AlphaVantage.Timeout))
		return alphavantage.New(cfg.AlphaVantage.APIKey, cfg.AlphaVantage.BaseURL, client), nil
	case "yahoo":
		client := xhttp.NewClient(xhttp.WithTimeout(cfg.Yahoo.Timeout))
		return yahoo.New(cfg.Yahoo.BaseURL, client), nil
	default:
		return nil, fmt.Errorf("unknown provider type %q", cfg.Provider.Type)
	}
}

// ProvideTextGenerator creates the Gemini client.
func ProvideTextGenerator(cfg *config.Config) repository.TextGenerator {
	client := xhttp.NewClient(xhttp.WithTimeout(cfg.Gemini.Timeout))
	return gemini.New(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model, client)
}

// ProvideSentimentAnalyzer creates the sentiment analyzer use case.
func ProvideSentimentAnalyzer(gen repository.TextGenerator, l *applogger.Logger, m repository.Metrics, cfg *config.Config) repository.SentimentAnalyzer {
	return usecase.NewSentimentService(gen, l, m, cfg.Gemini.Language)
}

// ProvideStockAggregator creates the symbol lookup orchestrator.
func ProvideStockAggregator(provider repository.MarketDataProvider, sentiment repository.SentimentAnalyzer, l *applogger.Logger, m repository.Metrics) *usecase.StockAggregator {
	return usecase.NewStockAggregator(provider, sentiment, l, m)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(l *applogger.Logger, agg *usecase.StockAggregator, cfg *config.Config) xhttp.Handler {
	return api.NewStocksHandler(l, agg, cfg.App.Name)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, l, handler)
}
