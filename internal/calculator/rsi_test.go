package calculator

import (
	"math"
	"testing"
)

func TestRollingRSISimple_KnownValues(t *testing.T) {
	closes := []float64{10, 11, 12, 11, 13}
	out := RollingRSISimple(closes, 3)

	for i := 0; i < 3; i++ {
		if !math.IsNaN(out[i]) {
			t.Errorf("index %d: expected NaN during warmup, got %v", i, out[i])
		}
	}
	// i=3: avgGain=2/3, avgLoss=1/3 -> RS=2 -> RSI=66.67
	if math.Abs(out[3]-200.0/3.0) > 1e-9 {
		t.Errorf("index 3: expected 66.67, got %v", out[3])
	}
	// i=4: avgGain=1, avgLoss=1/3 -> RS=3 -> RSI=75
	if math.Abs(out[4]-75.0) > 1e-9 {
		t.Errorf("index 4: expected 75, got %v", out[4])
	}
}

func TestRollingRSIWilder_KnownValues(t *testing.T) {
	closes := []float64{10, 11, 12, 11, 13}
	out := RollingRSIWilder(closes, 3)

	// Seed equals the simple mean of the first 3 changes.
	if math.Abs(out[3]-200.0/3.0) > 1e-9 {
		t.Errorf("index 3: expected 66.67, got %v", out[3])
	}
	// i=4: avgGain=(2/3*2+2)/3=10/9, avgLoss=(1/3*2+0)/3=2/9 -> RS=5 -> RSI=83.33
	if math.Abs(out[4]-500.0/6.0) > 1e-9 {
		t.Errorf("index 4: expected 83.33, got %v", out[4])
	}
}

func TestRSI_PoliciesDiverge(t *testing.T) {
	closes := []float64{10, 11, 12, 11, 13, 12, 14, 13, 15}
	simple := RollingRSISimple(closes, 3)
	wilder := RollingRSIWilder(closes, 3)
	if math.Abs(simple[len(closes)-1]-wilder[len(closes)-1]) < 1e-9 {
		t.Error("expected the two policies to diverge on a mixed series")
	}
}

func TestRSI_Bounded(t *testing.T) {
	// Deterministic mixed-delta series.
	deltas := []float64{2.3, -1.1, 0.7, -3.4, 1.9, 0.2, -0.6, 4.1, -2.8, 0.9}
	closes := make([]float64, 60)
	closes[0] = 100
	for i := 1; i < len(closes); i++ {
		closes[i] = closes[i-1] + deltas[i%len(deltas)]
	}

	for name, out := range map[string][]float64{
		"simple": RollingRSISimple(closes, 14),
		"wilder": RollingRSIWilder(closes, 14),
	} {
		for i, v := range out {
			if math.IsNaN(v) {
				continue
			}
			if v < 0 || v > 100 {
				t.Errorf("%s: index %d out of [0,100]: %v", name, i, v)
			}
		}
	}
}

func TestRSI_FlatSeriesUndefined(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 50
	}
	for name, out := range map[string][]float64{
		"simple": RollingRSISimple(closes, 14),
		"wilder": RollingRSIWilder(closes, 14),
	} {
		for i, v := range out {
			if !math.IsNaN(v) {
				t.Errorf("%s: index %d: flat series should stay undefined, got %v", name, i, v)
			}
		}
	}
}

func TestRSI_AllGainsSaturates(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	for name, out := range map[string][]float64{
		"simple": RollingRSISimple(closes, 14),
		"wilder": RollingRSIWilder(closes, 14),
	} {
		last := out[len(out)-1]
		if last != 100.0 {
			t.Errorf("%s: expected RSI 100 with zero losses, got %v", name, last)
		}
	}
}

func TestRSI_ShortSeries(t *testing.T) {
	closes := []float64{1, 2, 3}
	for name, out := range map[string][]float64{
		"simple": RollingRSISimple(closes, 14),
		"wilder": RollingRSIWilder(closes, 14),
	} {
		for i, v := range out {
			if !math.IsNaN(v) {
				t.Errorf("%s: index %d: expected all-NaN column, got %v", name, i, v)
			}
		}
	}
}
