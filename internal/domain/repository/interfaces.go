package repository

import (
	"context"

	"TraderPulse/internal/domain/models"
)

// MarketDataProvider is the upstream market data capability. Exactly one
// concrete provider is active per deployment, selected at startup.
//
//go:generate mockgen -package=usecase_test -destination=../../usecase/mock_repository_test.go TraderPulse/internal/domain/repository MarketDataProvider,TextGenerator
type MarketDataProvider interface {
	Name() string
	// FetchRealtimeQuote returns the latest quote for symbol.
	// A missing symbol yields ErrSymbolNotFound; any other failure an *UpstreamError.
	FetchRealtimeQuote(ctx context.Context, symbol string) (*models.RealtimeQuote, error)
	// FetchHistoricalSeries returns the canonical daily close series.
	// An empty series is a valid result, not a failure.
	FetchHistoricalSeries(ctx context.Context, symbol string) (models.PriceSeries, error)
}

// TextGenerator is a generative-text backend that returns a machine-parseable
// JSON payload for the given prompt.
type TextGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) ([]byte, error)
}

// SentimentAnalyzer produces a sentiment judgment for a symbol given its
// realtime quote as context. Implementations never fail outward: degraded
// results are returned as valid SentimentResults.
type SentimentAnalyzer interface {
	AnalyzeSentiment(ctx context.Context, symbol string, quote *models.RealtimeQuote) models.SentimentResult
}

// Metrics records operational counters and gauges.
type Metrics interface {
	RecordUpstreamRequest(provider, op, outcome string)
	RecordSentimentFallback(reason string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}

// NopMetrics discards all recordings. Intended for tests.
type NopMetrics struct{}

func (NopMetrics) RecordUpstreamRequest(provider, op, outcome string) {}
func (NopMetrics) RecordSentimentFallback(reason string)              {}
func (NopMetrics) RecordLastPrice(symbol string, price float64)       {}
func (NopMetrics) RecordLatency(op string, seconds float64)           {}
