package yahoo

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"TraderPulse/internal/domain/models"
	"TraderPulse/internal/domain/repository"
	xhttp "TraderPulse/pkg/http"
)

const providerName = "yahoo"

// Client implements repository.MarketDataProvider against the Yahoo Finance
// chart API: a fast-path call for realtime meta fields and a bulk download
// for history. The upstream exposes no not-found signal we can trust, so
// every failure on this path is an upstream fault; outages must not
// masquerade as bad symbols.
type Client struct {
	baseURL string
	client  *xhttp.Client
}

// New creates a Yahoo Finance provider.
func New(baseURL string, client *xhttp.Client) *Client {
	return &Client{
		baseURL: baseURL,
		client:  client,
	}
}

func (c *Client) Name() string { return providerName }

// chartResponse is the v8 chart payload. Close values arrive as loosely
// typed scalars (numbers or nulls), hence interface{}.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice  float64 `json:"regularMarketPrice"`
				PreviousClose       float64 `json:"previousClose"`
				RegularMarketVolume int64   `json:"regularMarketVolume"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchRealtimeQuote reads the fast-path meta fields and computes the change
// percent itself. A zero or missing previous close yields 0, not a fault.
func (c *Client) FetchRealtimeQuote(ctx context.Context, symbol string) (*models.RealtimeQuote, error) {
	resp, err := c.fetchChart(ctx, symbol, "1d")
	if err != nil {
		return nil, repository.NewUpstreamError(providerName, "quote", err)
	}

	meta := resp.Chart.Result[0].Meta
	price := meta.RegularMarketPrice
	// A partially populated meta must never turn into a zero-filled quote.
	if price <= 0 {
		return nil, repository.NewUpstreamError(providerName, "quote",
			fmt.Errorf("missing regularMarketPrice for %s", symbol))
	}

	changePercent := 0.0
	if meta.PreviousClose != 0 {
		changePercent = (price - meta.PreviousClose) / meta.PreviousClose * 100
		changePercent = math.Round(changePercent*10000) / 10000
	}

	return &models.RealtimeQuote{
		Symbol:        models.NormalizeSymbol(symbol),
		Price:         strconv.FormatFloat(price, 'f', -1, 64),
		ChangePercent: changePercent,
		Volume:        meta.RegularMarketVolume,
	}, nil
}

// FetchHistoricalSeries bulk-downloads daily bars and normalizes them into
// the canonical ascending 30-day series. Null closes (holidays, partial
// bars) are skipped; any non-numeric close fails the whole call.
func (c *Client) FetchHistoricalSeries(ctx context.Context, symbol string) (models.PriceSeries, error) {
	resp, err := c.fetchChart(ctx, symbol, "3mo")
	if err != nil {
		return nil, repository.NewUpstreamError(providerName, "series", err)
	}

	result := resp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return models.PriceSeries{}, nil
	}

	closes := result.Indicators.Quote[0].Close
	points := make([]models.PricePoint, 0, len(closes))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		close, err := coerceClose(closes[i])
		if err != nil {
			return nil, repository.NewUpstreamError(providerName, "series",
				fmt.Errorf("close at index %d: %w", i, err))
		}
		date := time.Unix(ts, 0).UTC().Format("2006-01-02")
		points = append(points, models.PricePoint{Date: date, Close: close})
	}

	return models.BuildSeries(points), nil
}

func (c *Client) fetchChart(ctx context.Context, symbol, rng string) (*chartResponse, error) {
	var resp chartResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/%s", c.baseURL, symbol),
		Headers: map[string]string{
			"User-Agent": "Mozilla/5.0",
		},
		QueryParams: map[string][]string{
			"interval": {"1d"},
			"range":    {rng},
		},
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart error %s: %s", resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("empty chart result for %s", symbol)
	}
	return &resp, nil
}

// coerceClose converts a loosely typed scalar into a plain decimal value.
func coerceClose(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to float64", v)
	}
}
