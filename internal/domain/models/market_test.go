package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeSymbol(t *testing.T) {
	t.Parallel()

	require.Equal(t, "AAPL", NormalizeSymbol(" aapl "))
	require.Equal(t, "ZZZZ999", NormalizeSymbol("zzzz999"))
}

func TestBuildSeries_CapsAtMostRecent30Ascending(t *testing.T) {
	t.Parallel()

	// 35 daily closes, deliberately supplied newest-first.
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	points := make([]PricePoint, 0, 35)
	for i := 34; i >= 0; i-- {
		points = append(points, PricePoint{
			Date:  base.AddDate(0, 0, i).Format("2006-01-02"),
			Close: 100 + float64(i),
		})
	}

	series := BuildSeries(points)

	require.Len(t, series, MaxSeriesPoints)
	// Oldest first: the 5 oldest days fell off the front.
	require.Equal(t, "2026-07-06", series[0].Date)
	require.Equal(t, "2026-08-04", series[len(series)-1].Date)
	require.Less(t, series[0].Date, series[len(series)-1].Date)

	seen := make(map[string]bool, len(series))
	for i, p := range series {
		require.False(t, seen[p.Date], "duplicate date %s", p.Date)
		seen[p.Date] = true
		if i > 0 {
			require.Less(t, series[i-1].Date, p.Date)
		}
	}
}

func TestBuildSeries_OrderIndependent(t *testing.T) {
	t.Parallel()

	asc := []PricePoint{
		{Date: "2026-08-25", Close: 1},
		{Date: "2026-08-26", Close: 2},
		{Date: "2026-08-27", Close: 3},
	}
	desc := []PricePoint{
		{Date: "2026-08-27", Close: 3},
		{Date: "2026-08-26", Close: 2},
		{Date: "2026-08-25", Close: 1},
	}

	require.Equal(t, BuildSeries(asc), BuildSeries(desc))
}

func TestBuildSeries_DuplicateDatesCollapse(t *testing.T) {
	t.Parallel()

	series := BuildSeries([]PricePoint{
		{Date: "2026-08-27", Close: 1},
		{Date: "2026-08-27", Close: 2},
	})

	require.Len(t, series, 1)
	require.Equal(t, 2.0, series[0].Close)
}

func TestBuildSeries_Empty(t *testing.T) {
	t.Parallel()

	require.Empty(t, BuildSeries(nil))
}
