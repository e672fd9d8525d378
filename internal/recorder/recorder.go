package recorder

import "github.com/SaurabhMV/price-tracking/internal/model"

// ScanSnapshot holds the aggregate outcome of one full pipeline run.
type ScanSnapshot struct {
	Symbol    string
	Interval  string
	BarCount  int
	LastClose float64
	Trend     model.TrendState
	RSI       float64
	Summary   model.PerformanceSummary
	OpenEntry float64 // 0 when no position is open at the end of the series
}

// Recorder persists scan history for later analysis.
type Recorder interface {
	RecordScan(snap *ScanSnapshot) error
	RecordCrossover(symbol string, ev model.CrossoverEvent) error
	RecordTrades(symbol string, trades []model.Trade) error
	Close() error
}
