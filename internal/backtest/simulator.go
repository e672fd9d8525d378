// Package backtest replays crossover events into a simulated long-only
// trade ledger and reduces it to aggregate statistics.
package backtest

import "github.com/SaurabhMV/price-tracking/internal/model"

// Simulate pairs crossover events into closed trades. The position model is
// flat/long with at most one open position: a BuyCross while long and a
// SellCross while flat are ignored. A trailing entry without an exit is
// returned separately and never enters the closed ledger.
func Simulate(events []model.CrossoverEvent) ([]model.Trade, *model.OpenPosition) {
	var trades []model.Trade
	var open *model.OpenPosition

	for _, ev := range events {
		switch ev.Kind {
		case model.BuyCross:
			if open == nil {
				open = &model.OpenPosition{EntryTime: ev.Time, EntryPrice: ev.Price}
			}
		case model.SellCross:
			if open == nil {
				continue
			}
			trades = append(trades, model.Trade{
				EntryTime:  open.EntryTime,
				EntryPrice: open.EntryPrice,
				ExitTime:   ev.Time,
				ExitPrice:  ev.Price,
				ProfitPct:  (ev.Price - open.EntryPrice) / open.EntryPrice * 100,
			})
			open = nil
		}
	}
	return trades, open
}
