package model

import "math"

// IndicatorFrame holds indicator columns aligned 1:1 with a BarSeries.
// Entries where the window has not filled yet are NaN; that is the normal
// warmup state, not an error.
type IndicatorFrame struct {
	SMAShort   []float64
	SMALong    []float64
	RSI        []float64
	VolAvg     []float64
	Resistance []float64
	Support    []float64
}

// Len returns the number of rows in the frame.
func (f *IndicatorFrame) Len() int { return len(f.SMAShort) }

// Defined reports whether an indicator entry holds a computed value.
func Defined(v float64) bool { return !math.IsNaN(v) }
