// Package strategy derives the per-bar trend state and crossover events from
// an indicator frame.
package strategy

import "github.com/SaurabhMV/price-tracking/internal/model"

// TrendStates classifies every bar by the short/long SMA relation. Bars
// where either SMA is still in warmup stay undefined; the comparison is
// never evaluated on undefined inputs.
func TrendStates(frame *model.IndicatorFrame) []model.TrendState {
	states := make([]model.TrendState, frame.Len())
	for i := range states {
		short, long := frame.SMAShort[i], frame.SMALong[i]
		if !model.Defined(short) || !model.Defined(long) {
			continue
		}
		if short > long {
			states[i] = model.TrendBullish
		} else {
			states[i] = model.TrendBearish
		}
	}
	return states
}

// DetectCrossovers walks the trend states and emits one event per state
// flip, tagged by the state being entered and priced at the close of the
// transition bar.
//
// The warmup region counts as bearish, so a series that is already trending
// up when the long window fills opens with a BuyCross on the first defined
// bar. That lets the simulator capture a trend that was already in place
// before the indicators warmed up.
func DetectCrossovers(series *model.BarSeries, frame *model.IndicatorFrame) []model.CrossoverEvent {
	var events []model.CrossoverEvent
	prev := model.TrendBearish
	for i, state := range TrendStates(frame) {
		if state == model.TrendUndefined {
			continue
		}
		if state != prev {
			kind := model.SellCross
			if state == model.TrendBullish {
				kind = model.BuyCross
			}
			events = append(events, model.CrossoverEvent{
				Index: i,
				Time:  series.Bars[i].Time,
				Price: series.Bars[i].Close,
				Kind:  kind,
			})
		}
		prev = state
	}
	return events
}
