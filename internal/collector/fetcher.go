package collector

import "github.com/SaurabhMV/price-tracking/internal/model"

// Fetcher defines the interface for fetching market data. Interval and
// period are source tags like "1d" / "6mo"; the engine treats them as
// opaque.
type Fetcher interface {
	FetchBars(symbol, interval, period string) ([]model.OHLCV, error)
	FetchCurrentPrice(symbol string) (float64, error)
	Name() string
}
