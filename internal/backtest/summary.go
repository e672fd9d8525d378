package backtest

import "github.com/SaurabhMV/price-tracking/internal/model"

// Summarize reduces a closed-trade ledger to aggregate statistics. An empty
// ledger yields the zero summary, never a division by zero.
func Summarize(trades []model.Trade) model.PerformanceSummary {
	summary := model.PerformanceSummary{TradeCount: len(trades)}
	if len(trades) == 0 {
		return summary
	}

	wins := 0
	for _, t := range trades {
		summary.TotalReturnPct += t.ProfitPct
		if t.ProfitPct > 0 {
			wins++
		}
	}
	summary.WinRate = float64(wins) / float64(len(trades))
	summary.AvgProfitPct = summary.TotalReturnPct / float64(len(trades))
	return summary
}
