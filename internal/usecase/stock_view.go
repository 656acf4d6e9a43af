package usecase

import (
	"context"
	"strconv"
	"time"

	"TraderPulse/internal/domain/models"
	"TraderPulse/internal/domain/repository"
	xhttp "TraderPulse/pkg/http"
	xlogger "TraderPulse/pkg/logger"
)

// StockAggregator orchestrates a single symbol lookup: it invokes the active
// provider and the sentiment analyzer and owns the sole fault-to-response
// mapping. No retries, no caching; every request re-fetches upstream.
type StockAggregator struct {
	provider  repository.MarketDataProvider
	sentiment repository.SentimentAnalyzer
	logger    *xlogger.Logger
	metrics   repository.Metrics
}

// NewStockAggregator creates the per-request lookup orchestrator.
func NewStockAggregator(provider repository.MarketDataProvider, sentiment repository.SentimentAnalyzer, l *xlogger.Logger, m repository.Metrics) *StockAggregator {
	return &StockAggregator{
		provider:  provider,
		sentiment: sentiment,
		logger:    l,
		metrics:   m,
	}
}

type seriesResult struct {
	series models.PriceSeries
	err    error
}

// GetStockView fetches the realtime quote and the historical series for
// symbol. The two upstream calls have no data dependency and run
// concurrently; both must complete before the view is assembled. A missing
// symbol maps to 404, any upstream fault to 500.
func (a *StockAggregator) GetStockView(ctx context.Context, symbol string) (*models.StockView, error) {
	symbol = models.NormalizeSymbol(symbol)
	start := time.Now()

	seriesCh := make(chan seriesResult, 1)
	go func() {
		series, err := a.fetchSeries(ctx, symbol)
		seriesCh <- seriesResult{series: series, err: err}
	}()

	quote, quoteErr := a.fetchQuote(ctx, symbol)
	sr := <-seriesCh

	a.metrics.RecordLatency("stock_view", time.Since(start).Seconds())

	if quoteErr != nil {
		return nil, a.mapProviderError(symbol, quoteErr)
	}
	if sr.err != nil {
		return nil, a.mapProviderError(symbol, sr.err)
	}

	return &models.StockView{
		Realtime:   quote,
		Historical: sr.series,
	}, nil
}

// GetSentiment fetches the realtime quote as AI context, then invokes the
// analyzer. The quote error mapping is shared with GetStockView; sentiment
// is never computed for an unresolvable symbol. The analyzer itself cannot
// fail, so a resolved symbol always yields a 200-class result.
func (a *StockAggregator) GetSentiment(ctx context.Context, symbol string) (*models.SentimentResult, error) {
	symbol = models.NormalizeSymbol(symbol)
	start := time.Now()

	quote, err := a.fetchQuote(ctx, symbol)
	if err != nil {
		return nil, a.mapProviderError(symbol, err)
	}

	result := a.sentiment.AnalyzeSentiment(ctx, symbol, quote)
	a.metrics.RecordLatency("sentiment", time.Since(start).Seconds())
	return &result, nil
}

func (a *StockAggregator) fetchQuote(ctx context.Context, symbol string) (*models.RealtimeQuote, error) {
	quote, err := a.provider.FetchRealtimeQuote(ctx, symbol)
	a.metrics.RecordUpstreamRequest(a.provider.Name(), "quote", outcome(err))
	if err != nil {
		return nil, err
	}
	if price, perr := strconv.ParseFloat(quote.Price, 64); perr == nil {
		a.metrics.RecordLastPrice(symbol, price)
	}
	return quote, nil
}

func (a *StockAggregator) fetchSeries(ctx context.Context, symbol string) (models.PriceSeries, error) {
	series, err := a.provider.FetchHistoricalSeries(ctx, symbol)
	a.metrics.RecordUpstreamRequest(a.provider.Name(), "series", outcome(err))
	return series, err
}

// mapProviderError is the single place domain faults become response classes.
func (a *StockAggregator) mapProviderError(symbol string, err error) error {
	if repository.IsNotFound(err) {
		return xhttp.NotFoundErrorf("symbol %s not found", symbol)
	}
	a.logger.Error("market data upstream failed",
		xlogger.String("symbol", symbol),
		xlogger.String("provider", a.provider.Name()),
		xlogger.Error(err),
	)
	return xhttp.InternalError("market data service unavailable").WithError(err)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case repository.IsNotFound(err):
		return "not_found"
	default:
		return "upstream_error"
	}
}
