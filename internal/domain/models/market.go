package models

import (
	"sort"
	"strings"
)

// MaxSeriesPoints caps a historical series at the most recent trading days.
const MaxSeriesPoints = 30

// NormalizeSymbol upper-cases a requested ticker symbol.
// Validation of the allowed shape happens at the transport layer.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// RealtimeQuote is the canonical realtime view of a symbol.
// Price is kept as the upstream decimal string to preserve precision.
type RealtimeQuote struct {
	Symbol        string  `json:"symbol"`
	Price         string  `json:"price"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
}

// PricePoint is one daily close. Date is an ISO 8601 calendar day.
type PricePoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// PriceSeries is chronological ascending (oldest first), at most
// MaxSeriesPoints entries, no duplicate dates.
type PriceSeries []PricePoint

// BuildSeries normalizes raw dated closes into the canonical shape:
// duplicates collapse (last value wins), dates sort descending, the most
// recent MaxSeriesPoints survive, and the result is reversed to ascending.
func BuildSeries(points []PricePoint) PriceSeries {
	byDate := make(map[string]float64, len(points))
	for _, p := range points {
		byDate[p.Date] = p.Close
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	if len(dates) > MaxSeriesPoints {
		dates = dates[:MaxSeriesPoints]
	}

	series := make(PriceSeries, 0, len(dates))
	for i := len(dates) - 1; i >= 0; i-- {
		series = append(series, PricePoint{Date: dates[i], Close: byDate[dates[i]]})
	}
	return series
}

// StockView is the combined lookup result: realtime quote plus history.
type StockView struct {
	Realtime   *RealtimeQuote `json:"realtime"`
	Historical PriceSeries    `json:"historical"`
}
