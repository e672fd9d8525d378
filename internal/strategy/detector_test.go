package strategy

import (
	"testing"
	"time"

	"github.com/SaurabhMV/price-tracking/internal/calculator"
	"github.com/SaurabhMV/price-tracking/internal/model"
)

func testParams() calculator.Params {
	p := calculator.DefaultParams()
	p.WShort = 3
	p.WLong = 5
	p.WMomentum = 3
	p.WExtrema = 3
	p.WVolume = 3
	return p
}

func seriesFromCloses(t *testing.T, closes []float64) *model.BarSeries {
	t.Helper()
	bars := make([]model.OHLCV, len(closes))
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time: base.AddDate(0, 0, i), Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 1000,
		}
	}
	s, err := model.NewBarSeries("TEST", "1d", "6mo", bars)
	if err != nil {
		t.Fatalf("build series: %v", err)
	}
	return s
}

// riseFall ramps 10..19 then falls back one step per bar.
func riseFall() []float64 {
	closes := make([]float64, 20)
	for i := 0; i < 10; i++ {
		closes[i] = float64(i) + 10
	}
	for i := 10; i < 20; i++ {
		closes[i] = closes[9] - float64(i-9)
	}
	return closes
}

func TestTrendStates_WarmupUndefined(t *testing.T) {
	series := seriesFromCloses(t, riseFall())
	frame := calculator.BuildFrame(series, testParams())
	states := TrendStates(frame)

	for i := 0; i < 4; i++ {
		if states[i] != model.TrendUndefined {
			t.Errorf("index %d: expected undefined state during warmup, got %v", i, states[i])
		}
	}
	if states[4] == model.TrendUndefined {
		t.Error("index 4: expected a defined state once both SMAs fill")
	}
}

func TestDetectCrossovers_RisingSeries(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = float64(i) + 10
	}
	series := seriesFromCloses(t, closes)
	frame := calculator.BuildFrame(series, testParams())
	events := DetectCrossovers(series, frame)

	if len(events) != 1 {
		t.Fatalf("expected exactly one event for a rising series, got %d", len(events))
	}
	ev := events[0]
	if ev.Kind != model.BuyCross {
		t.Errorf("expected BuyCross, got %s", ev.Kind)
	}
	if ev.Index != 4 {
		t.Errorf("expected event at the first defined bar (4), got %d", ev.Index)
	}
	if ev.Price != closes[4] {
		t.Errorf("expected event priced at the bar close %.2f, got %.2f", closes[4], ev.Price)
	}
}

func TestDetectCrossovers_RiseThenFall(t *testing.T) {
	series := seriesFromCloses(t, riseFall())
	frame := calculator.BuildFrame(series, testParams())
	events := DetectCrossovers(series, frame)

	if len(events) != 2 {
		t.Fatalf("expected buy then sell, got %d events: %+v", len(events), events)
	}
	if events[0].Kind != model.BuyCross || events[1].Kind != model.SellCross {
		t.Errorf("expected [BUY SELL], got [%s %s]", events[0].Kind, events[1].Kind)
	}
	if !events[1].Time.After(events[0].Time) {
		t.Error("sell event must come after the buy event")
	}
}

func TestDetectCrossovers_ConstantSeries(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 77
	}
	series := seriesFromCloses(t, closes)
	frame := calculator.BuildFrame(series, testParams())

	if events := DetectCrossovers(series, frame); len(events) != 0 {
		t.Errorf("expected no events for a flat series, got %d", len(events))
	}
}

func TestDetectCrossovers_ShortSeries(t *testing.T) {
	series := seriesFromCloses(t, []float64{10, 11, 12})
	frame := calculator.BuildFrame(series, testParams())

	if events := DetectCrossovers(series, frame); len(events) != 0 {
		t.Errorf("expected no events while SMAs never fill, got %d", len(events))
	}
}
