package yahoo_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"TraderPulse/internal/domain/models"
	"TraderPulse/internal/domain/repository"
	"TraderPulse/internal/service/yahoo"
	xhttp "TraderPulse/pkg/http"
)

func newClient(t *testing.T, handler http.HandlerFunc) *yahoo.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return yahoo.New(srv.URL, xhttp.NewClient(xhttp.WithTimeout(2*time.Second)))
}

func quotePayload(price, previousClose float64, volume int64) string {
	return fmt.Sprintf(`{"chart":{"result":[{"meta":{
		"regularMarketPrice": %g,
		"previousClose": %g,
		"regularMarketVolume": %d
	}}]}}`, price, previousClose, volume)
}

func TestFetchRealtimeQuote_ComputesChangePercent(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/AAPL", r.URL.Path)
		require.Equal(t, "1d", r.URL.Query().Get("range"))
		fmt.Fprint(w, quotePayload(150.00, 145.00, 43822577))
	})

	quote, err := client.FetchRealtimeQuote(t.Context(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, "AAPL", quote.Symbol)
	require.Equal(t, "150", quote.Price)
	require.Equal(t, 3.4483, quote.ChangePercent)
	require.Equal(t, int64(43822577), quote.Volume)
}

func TestFetchRealtimeQuote_ZeroPreviousCloseYieldsZeroChange(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, quotePayload(150.00, 0, 1000))
	})

	quote, err := client.FetchRealtimeQuote(t.Context(), "AAPL")
	require.NoError(t, err)
	require.Zero(t, quote.ChangePercent)
}

func TestFetchRealtimeQuote_MissingPreviousCloseYieldsZeroChange(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[{"meta":{"regularMarketPrice":150.0,"regularMarketVolume":1000}}]}}`)
	})

	quote, err := client.FetchRealtimeQuote(t.Context(), "AAPL")
	require.NoError(t, err)
	require.Zero(t, quote.ChangePercent)
}

func TestFetchRealtimeQuote_EmptyMetaIsUpstreamError(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty meta": `{"chart":{"result":[{"meta":{}}]}}`,
		"zero price": `{"chart":{"result":[{"meta":{"regularMarketPrice":0,"previousClose":145.0,"regularMarketVolume":1000}}]}}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, payload)
			})

			quote, err := client.FetchRealtimeQuote(t.Context(), "AAPL")
			require.Nil(t, quote)
			require.True(t, repository.IsUpstream(err))
			require.False(t, repository.IsNotFound(err))
		})
	}
}

func TestFetchRealtimeQuote_TimeoutIsUpstreamError(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		fmt.Fprint(w, quotePayload(150.00, 145.00, 1000))
	})

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	_, err := client.FetchRealtimeQuote(ctx, "AAPL")
	require.True(t, repository.IsUpstream(err))
	require.False(t, repository.IsNotFound(err))
}

func TestFetchRealtimeQuote_AnyFailureIsUpstreamNeverNotFound(t *testing.T) {
	t.Parallel()

	cases := map[string]http.HandlerFunc{
		"transport 500": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"chart error object": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`)
		},
		"empty result": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"chart":{"result":[]}}`)
		},
		"malformed payload": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `garbage`)
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			client := newClient(t, handler)
			_, err := client.FetchRealtimeQuote(t.Context(), "ZZZZ999")
			require.True(t, repository.IsUpstream(err))
			require.False(t, repository.IsNotFound(err))
		})
	}
}

func chartSeriesPayload(base time.Time, closes []interface{}) string {
	timestamps := make([]int64, len(closes))
	for i := range closes {
		timestamps[i] = base.AddDate(0, 0, i).Unix()
	}
	payload, _ := json.Marshal(map[string]interface{}{
		"chart": map[string]interface{}{
			"result": []map[string]interface{}{{
				"meta":      map[string]interface{}{},
				"timestamp": timestamps,
				"indicators": map[string]interface{}{
					"quote": []map[string]interface{}{{"close": closes}},
				},
			}},
		},
	})
	return string(payload)
}

func TestFetchHistoricalSeries_NormalizesTo30Ascending(t *testing.T) {
	t.Parallel()

	closes := make([]interface{}, 35)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	base := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "3mo", r.URL.Query().Get("range"))
		fmt.Fprint(w, chartSeriesPayload(base, closes))
	})

	series, err := client.FetchHistoricalSeries(t.Context(), "AAPL")
	require.NoError(t, err)
	require.Len(t, series, models.MaxSeriesPoints)
	require.Equal(t, "2026-07-06", series[0].Date)
	require.Equal(t, "2026-08-04", series[len(series)-1].Date)
	for i := 1; i < len(series); i++ {
		require.Less(t, series[i-1].Date, series[i].Date)
	}
}

func TestFetchHistoricalSeries_NullClosesAreSkipped(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartSeriesPayload(base, []interface{}{148.1, nil, 150.0}))
	})

	series, err := client.FetchHistoricalSeries(t.Context(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, models.PriceSeries{
		{Date: "2026-08-24", Close: 148.1},
		{Date: "2026-08-26", Close: 150.0},
	}, series)
}

func TestFetchHistoricalSeries_NonNumericCloseFailsWholeCall(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartSeriesPayload(base, []interface{}{148.1, "148.9", 150.0}))
	})

	series, err := client.FetchHistoricalSeries(t.Context(), "AAPL")
	require.Nil(t, series)
	require.True(t, repository.IsUpstream(err))
}

func TestFetchHistoricalSeries_EmptyIndicatorsIsValidEmptySeries(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[{"meta":{},"timestamp":[],"indicators":{"quote":[]}}]}}`)
	})

	series, err := client.FetchHistoricalSeries(t.Context(), "AAPL")
	require.NoError(t, err)
	require.Empty(t, series)
}
