package analyzer

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaurabhMV/price-tracking/internal/calculator"
	"github.com/SaurabhMV/price-tracking/internal/model"
)

func seriesFromCloses(t *testing.T, closes []float64) *model.BarSeries {
	t.Helper()
	bars := make([]model.OHLCV, len(closes))
	base := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time: base.AddDate(0, 0, i), Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 1000,
		}
	}
	s, err := model.NewBarSeries("TEST", "1d", "6mo", bars)
	require.NoError(t, err)
	return s
}

// rampSeries rises linearly from 100 to 160 over the first 80 bars, then
// falls back toward 100 over the last 30.
func rampSeries(t *testing.T) *model.BarSeries {
	closes := make([]float64, 110)
	for i := 0; i < 80; i++ {
		closes[i] = 100 + 60*float64(i)/79
	}
	for i := 80; i < 110; i++ {
		closes[i] = 160 - 2*float64(i-79)
	}
	return seriesFromCloses(t, closes)
}

func TestAnalyze_InvalidParams(t *testing.T) {
	series := seriesFromCloses(t, []float64{100, 101})

	p := calculator.DefaultParams()
	p.WShort = 60 // >= WLong

	_, err := Analyze(series, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "short_window")
}

func TestAnalyze_RampRoundTrip(t *testing.T) {
	series := rampSeries(t)
	report, err := Analyze(series, calculator.DefaultParams())
	require.NoError(t, err)

	// One opening buy once the 50-bar window fills, one sell after the peak.
	require.Len(t, report.Events, 2)
	assert.Equal(t, model.BuyCross, report.Events[0].Kind)
	assert.Equal(t, model.SellCross, report.Events[1].Kind)
	assert.Equal(t, 49, report.Events[0].Index)
	assert.Greater(t, report.Events[1].Index, 80, "sell should follow the peak-to-decline transition")

	require.Equal(t, 1, report.Summary.TradeCount)
	require.Len(t, report.Trades, 1)
	trade := report.Trades[0]
	wantReturn := (trade.ExitPrice - trade.EntryPrice) / trade.EntryPrice * 100
	assert.InDelta(t, wantReturn, report.Summary.TotalReturnPct, 1e-9)
	assert.Nil(t, report.Open)
}

func TestAnalyze_ShortSeriesYieldsNoEvents(t *testing.T) {
	series := seriesFromCloses(t, []float64{100, 102, 104, 103, 105})
	report, err := Analyze(series, calculator.DefaultParams())
	require.NoError(t, err)

	for i, v := range report.Frame.SMALong {
		assert.True(t, math.IsNaN(v), "smaLong[%d] should be undefined", i)
	}
	assert.Empty(t, report.Events)
	assert.Empty(t, report.Trades)
	assert.Equal(t, model.PerformanceSummary{}, report.Summary)
}

// equalColumn compares float columns treating NaN as equal to NaN.
func equalColumn(t *testing.T, name string, a, b []float64) {
	t.Helper()
	require.Len(t, b, len(a), name)
	for i := range a {
		if math.IsNaN(a[i]) && math.IsNaN(b[i]) {
			continue
		}
		assert.Equal(t, a[i], b[i], "%s[%d]", name, i)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	series := rampSeries(t)
	p := calculator.DefaultParams()

	first, err := Analyze(series, p)
	require.NoError(t, err)
	second, err := Analyze(series, p)
	require.NoError(t, err)

	assert.Equal(t, first.States, second.States)
	assert.Equal(t, first.Events, second.Events)
	assert.Equal(t, first.Trades, second.Trades)
	assert.Equal(t, first.Summary, second.Summary)
	equalColumn(t, "smaShort", first.Frame.SMAShort, second.Frame.SMAShort)
	equalColumn(t, "smaLong", first.Frame.SMALong, second.Frame.SMALong)
	equalColumn(t, "rsi", first.Frame.RSI, second.Frame.RSI)
	equalColumn(t, "volAvg", first.Frame.VolAvg, second.Frame.VolAvg)
	equalColumn(t, "resistance", first.Frame.Resistance, second.Frame.Resistance)
	equalColumn(t, "support", first.Frame.Support, second.Frame.Support)
}

func TestAnalyze_WilderPolicyEndToEnd(t *testing.T) {
	series := rampSeries(t)
	p := calculator.DefaultParams()
	p.RSIPolicy = calculator.RSIWilder

	report, err := Analyze(series, p)
	require.NoError(t, err)
	for i, v := range report.Frame.RSI {
		if math.IsNaN(v) {
			continue
		}
		assert.GreaterOrEqual(t, v, 0.0, "rsi[%d]", i)
		assert.LessOrEqual(t, v, 100.0, "rsi[%d]", i)
	}
}
