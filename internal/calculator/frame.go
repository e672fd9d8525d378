// Package calculator computes rolling technical indicators over a bar series.
// Every function is a pure transformation; warmup entries are NaN and a
// series shorter than a window yields an all-NaN column, never an error.
package calculator

import "github.com/SaurabhMV/price-tracking/internal/model"

// BuildFrame computes all indicator columns for the series. The windows are
// independent of each other.
func BuildFrame(series *model.BarSeries, p Params) *model.IndicatorFrame {
	closes := series.Closes()

	frame := &model.IndicatorFrame{
		SMAShort:   RollingSMA(closes, p.WShort),
		SMALong:    RollingSMA(closes, p.WLong),
		VolAvg:     RollingSMA(series.Volumes(), p.WVolume),
		Resistance: RollingMax(series.Highs(), p.WExtrema),
		Support:    RollingMin(series.Lows(), p.WExtrema),
	}

	switch p.RSIPolicy {
	case RSIWilder:
		frame.RSI = RollingRSIWilder(closes, p.WMomentum)
	default:
		frame.RSI = RollingRSISimple(closes, p.WMomentum)
	}
	return frame
}
