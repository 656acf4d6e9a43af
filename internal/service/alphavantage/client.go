package alphavantage

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"TraderPulse/internal/domain/models"
	"TraderPulse/internal/domain/repository"
	xhttp "TraderPulse/pkg/http"
)

const providerName = "alphavantage"

// Client implements repository.MarketDataProvider against the Alpha Vantage
// query API. Quote and series lookups are two independent HTTP calls.
type Client struct {
	apiKey  string
	baseURL string
	client  *xhttp.Client
}

// New creates an Alpha Vantage provider.
func New(apiKey, baseURL string, client *xhttp.Client) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

func (c *Client) Name() string { return providerName }

// globalQuoteResponse is the loosely-labeled GLOBAL_QUOTE payload.
type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol        string `json:"01. symbol"`
		Price         string `json:"05. price"`
		Volume        string `json:"06. volume"`
		ChangePercent string `json:"10. change percent"`
	} `json:"Global Quote"`
}

// dailySeriesResponse maps date strings to OHLC field labels.
type dailySeriesResponse struct {
	Series map[string]struct {
		Close string `json:"4. close"`
	} `json:"Time Series (Daily)"`
}

// FetchRealtimeQuote fetches the latest GLOBAL_QUOTE for symbol.
// An empty quote object means the symbol does not exist upstream.
func (c *Client) FetchRealtimeQuote(ctx context.Context, symbol string) (*models.RealtimeQuote, error) {
	var resp globalQuoteResponse
	if err := c.query(ctx, "GLOBAL_QUOTE", symbol, &resp); err != nil {
		return nil, repository.NewUpstreamError(providerName, "quote", err)
	}

	q := resp.GlobalQuote
	if q.Symbol == "" {
		return nil, fmt.Errorf("%s: %w", symbol, repository.ErrSymbolNotFound)
	}

	changePercent, err := parsePercent(q.ChangePercent)
	if err != nil {
		return nil, repository.NewUpstreamError(providerName, "quote", err)
	}

	volume, err := strconv.ParseInt(q.Volume, 10, 64)
	if err != nil || volume < 0 {
		return nil, repository.NewUpstreamError(providerName, "quote",
			fmt.Errorf("bad volume %q: %w", q.Volume, errOrRange(err)))
	}

	return &models.RealtimeQuote{
		Symbol:        models.NormalizeSymbol(q.Symbol),
		Price:         q.Price,
		ChangePercent: changePercent,
		Volume:        volume,
	}, nil
}

// FetchHistoricalSeries fetches TIME_SERIES_DAILY and normalizes it into the
// canonical ascending 30-day series. A coercion failure on any single date
// fails the whole call.
func (c *Client) FetchHistoricalSeries(ctx context.Context, symbol string) (models.PriceSeries, error) {
	var resp dailySeriesResponse
	if err := c.query(ctx, "TIME_SERIES_DAILY", symbol, &resp); err != nil {
		return nil, repository.NewUpstreamError(providerName, "series", err)
	}

	points := make([]models.PricePoint, 0, len(resp.Series))
	for date, fields := range resp.Series {
		close, err := strconv.ParseFloat(fields.Close, 64)
		if err != nil {
			return nil, repository.NewUpstreamError(providerName, "series",
				fmt.Errorf("bad close %q on %s: %w", fields.Close, date, err))
		}
		points = append(points, models.PricePoint{Date: date, Close: close})
	}

	return models.BuildSeries(points), nil
}

func (c *Client) query(ctx context.Context, function, symbol string, dest interface{}) error {
	return c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL,
		QueryParams: map[string][]string{
			"function": {function},
			"symbol":   {symbol},
			"apikey":   {c.apiKey},
		},
	}, dest)
}

func parsePercent(s string) (float64, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "%")
	if trimmed == "" {
		return 0, fmt.Errorf("empty change percent")
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("bad change percent %q: %w", s, err)
	}
	return v, nil
}

func errOrRange(err error) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("negative volume")
}
