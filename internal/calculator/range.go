package calculator

// RollingMax computes the rolling maximum of values over the given window
// (resistance when fed highs). Entries before the window fills stay NaN.
func RollingMax(values []float64, window int) []float64 {
	out := nanSlice(len(values))
	if window <= 0 || len(values) < window {
		return out
	}
	for i := window - 1; i < len(values); i++ {
		max := values[i-window+1]
		for j := i - window + 2; j <= i; j++ {
			if values[j] > max {
				max = values[j]
			}
		}
		out[i] = max
	}
	return out
}

// RollingMin computes the rolling minimum of values over the given window
// (support when fed lows). Entries before the window fills stay NaN.
func RollingMin(values []float64, window int) []float64 {
	out := nanSlice(len(values))
	if window <= 0 || len(values) < window {
		return out
	}
	for i := window - 1; i < len(values); i++ {
		min := values[i-window+1]
		for j := i - window + 2; j <= i; j++ {
			if values[j] < min {
				min = values[j]
			}
		}
		out[i] = min
	}
	return out
}
