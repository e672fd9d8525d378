package recorder

import "github.com/SaurabhMV/price-tracking/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordScan(_ *ScanSnapshot) error                       { return nil }
func (n *NoopRecorder) RecordCrossover(_ string, _ model.CrossoverEvent) error { return nil }
func (n *NoopRecorder) RecordTrades(_ string, _ []model.Trade) error           { return nil }
func (n *NoopRecorder) Close() error                                           { return nil }
