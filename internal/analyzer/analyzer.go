// Package analyzer composes the indicator, signal and simulation stages into
// one pure pipeline run over a bar series.
package analyzer

import (
	"github.com/SaurabhMV/price-tracking/internal/backtest"
	"github.com/SaurabhMV/price-tracking/internal/calculator"
	"github.com/SaurabhMV/price-tracking/internal/model"
	"github.com/SaurabhMV/price-tracking/internal/strategy"
)

// Report bundles every stage's output for one run. All fields are derived
// from the series and params alone; identical inputs produce an identical
// report.
type Report struct {
	Series  *model.BarSeries
	Frame   *model.IndicatorFrame
	States  []model.TrendState
	Events  []model.CrossoverEvent
	Trades  []model.Trade
	Open    *model.OpenPosition
	Summary model.PerformanceSummary
}

// Analyze validates the params, then runs the full pipeline: indicators,
// trend states, crossover events, the trade simulation and its summary.
// The series is recomputed end-to-end on every call and never mutated; the
// engine keeps no state between invocations.
func Analyze(series *model.BarSeries, p calculator.Params) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	frame := calculator.BuildFrame(series, p)
	states := strategy.TrendStates(frame)
	events := strategy.DetectCrossovers(series, frame)
	trades, open := backtest.Simulate(events)

	return &Report{
		Series:  series,
		Frame:   frame,
		States:  states,
		Events:  events,
		Trades:  trades,
		Open:    open,
		Summary: backtest.Summarize(trades),
	}, nil
}
