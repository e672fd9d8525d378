package calculator

import "math"

// nanSlice returns a slice of n NaN entries, the warmup marker for every
// rolling column.
func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// RollingSMA computes the simple moving average of values over the given
// window. Entries before the window fills stay NaN; a window larger than the
// input yields an all-NaN column.
func RollingSMA(values []float64, window int) []float64 {
	out := nanSlice(len(values))
	if window <= 0 || len(values) < window {
		return out
	}
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}
