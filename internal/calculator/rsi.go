package calculator

import "math"

// RSIPolicy selects how average gains and losses are smoothed. The two
// policies share a name but are different algorithms with diverging outputs,
// so they stay separate strategies instead of one unified formula.
type RSIPolicy string

const (
	// RSISimple averages gains and losses with a plain rolling mean.
	RSISimple RSIPolicy = "simple"
	// RSIWilder averages gains and losses with Wilder's exponential
	// smoothing, seeded once a full window of changes is available.
	RSIWilder RSIPolicy = "wilder"
)

func splitChange(change float64) (gain, loss float64) {
	if change > 0 {
		return change, 0
	}
	return 0, -change
}

// rsiFromAverages applies the degenerate-input rules: a flat run (both
// averages zero) is undefined, zero loss with some gain saturates at 100.
func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return math.NaN()
		}
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}

// RollingRSISimple computes the RSI with simple-moving-average smoothing of
// gains and losses over window single-bar changes. The first defined entry
// is at index window (one change per bar, starting at index 1).
func RollingRSISimple(closes []float64, window int) []float64 {
	out := nanSlice(len(closes))
	if window <= 0 || len(closes) < window+1 {
		return out
	}
	var gainSum, lossSum float64
	for i := 1; i < len(closes); i++ {
		g, l := splitChange(closes[i] - closes[i-1])
		gainSum += g
		lossSum += l
		if i > window {
			g0, l0 := splitChange(closes[i-window] - closes[i-window-1])
			gainSum -= g0
			lossSum -= l0
		}
		if i >= window {
			out[i] = rsiFromAverages(gainSum/float64(window), lossSum/float64(window))
		}
	}
	return out
}

// RollingRSIWilder computes the RSI with Wilder smoothing: the averages are
// seeded with a plain mean of the first window changes, then updated as
// avg = (avg*(window-1) + change) / window. Same warmup as the simple policy.
func RollingRSIWilder(closes []float64, window int) []float64 {
	out := nanSlice(len(closes))
	if window <= 0 || len(closes) < window+1 {
		return out
	}
	var avgGain, avgLoss float64
	for i := 1; i <= window; i++ {
		g, l := splitChange(closes[i] - closes[i-1])
		avgGain += g
		avgLoss += l
	}
	avgGain /= float64(window)
	avgLoss /= float64(window)
	out[window] = rsiFromAverages(avgGain, avgLoss)

	w := float64(window)
	for i := window + 1; i < len(closes); i++ {
		g, l := splitChange(closes[i] - closes[i-1])
		avgGain = (avgGain*(w-1) + g) / w
		avgLoss = (avgLoss*(w-1) + l) / w
		out[i] = rsiFromAverages(avgGain, avgLoss)
	}
	return out
}
