package collector

import (
	"fmt"
	"time"

	"github.com/SaurabhMV/price-tracking/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  []model.OHLCV
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_, _, _ string) ([]model.OHLCV, error) {
	if m.Bars != nil {
		return m.Bars, nil
	}
	return generateMockBars(m.Price, 120), nil
}

func (m *MockFetcher) FetchCurrentPrice(_ string) (float64, error) {
	return m.Price, nil
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches the configured instrument's history and normalizes it
// into a BarSeries ready for the pipeline. It does no computation itself.
type Collector struct {
	Fetcher  Fetcher
	Symbol   string
	Interval string
	Period   string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol, interval, period string) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol, Interval: interval, Period: period}
}

// Collect fetches the full history and builds the series. An empty result
// from the source is an error here, not inside the engine.
func (c *Collector) Collect() (*model.BarSeries, error) {
	raw, err := c.Fetcher.FetchBars(c.Symbol, c.Interval, c.Period)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	series, err := model.NewBarSeries(c.Symbol, c.Interval, c.Period, raw)
	if err != nil {
		return nil, err
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("no usable bars for %s (%s/%s)", c.Symbol, c.Interval, c.Period)
	}
	return series, nil
}
