package model

import (
	"fmt"
	"sort"
	"time"
)

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Valid reports whether the bar has positive prices, non-negative volume
// and a consistent low <= open,close <= high range.
func (o OHLCV) Valid() bool {
	if o.Open <= 0 || o.High <= 0 || o.Low <= 0 || o.Close <= 0 {
		return false
	}
	if o.Volume < 0 {
		return false
	}
	return o.Low <= o.Open && o.Open <= o.High &&
		o.Low <= o.Close && o.Close <= o.High
}

// BarSeries is an ordered bar sequence for one instrument at a fixed
// sampling interval. Interval and Period are opaque tags from the data
// source ("1d", "6mo", ...). A series is never mutated after construction;
// re-running the pipeline builds a fresh one.
type BarSeries struct {
	Symbol    string
	Interval  string
	Period    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// NewBarSeries normalizes raw bars into a valid series: malformed bars are
// dropped, the rest sorted by time and deduplicated (last bar wins on equal
// timestamps).
func NewBarSeries(symbol, interval, period string, raw []OHLCV) (*BarSeries, error) {
	if symbol == "" {
		return nil, fmt.Errorf("bar series: symbol is required")
	}
	bars := make([]OHLCV, 0, len(raw))
	for _, b := range raw {
		if b.Valid() {
			bars = append(bars, b)
		}
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	dedup := bars[:0]
	for _, b := range bars {
		if n := len(dedup); n > 0 && dedup[n-1].Time.Equal(b.Time) {
			dedup[n-1] = b
			continue
		}
		dedup = append(dedup, b)
	}

	return &BarSeries{
		Symbol:    symbol,
		Interval:  interval,
		Period:    period,
		Bars:      dedup,
		FetchedAt: time.Now(),
	}, nil
}

// Len returns the number of bars.
func (s *BarSeries) Len() int { return len(s.Bars) }

// Closes returns the close column.
func (s *BarSeries) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

// Highs returns the high column.
func (s *BarSeries) Highs() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.High
	}
	return out
}

// Lows returns the low column.
func (s *BarSeries) Lows() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Low
	}
	return out
}

// Volumes returns the volume column.
func (s *BarSeries) Volumes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Volume
	}
	return out
}
