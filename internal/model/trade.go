package model

import "time"

// Trade is a closed entry/exit pair from the long-only simulation.
type Trade struct {
	EntryTime  time.Time
	EntryPrice float64
	ExitTime   time.Time
	ExitPrice  float64
	ProfitPct  float64
}

// OpenPosition is a trailing entry that had no matching exit before the end
// of the series. It never enters the closed ledger or the summary.
type OpenPosition struct {
	EntryTime  time.Time
	EntryPrice float64
}

// PerformanceSummary reduces a closed-trade ledger. All fields are zero for
// an empty ledger.
type PerformanceSummary struct {
	TradeCount     int
	TotalReturnPct float64
	WinRate        float64 // fraction of closed trades with positive profit
	AvgProfitPct   float64
}
