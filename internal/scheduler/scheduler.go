package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/SaurabhMV/price-tracking/internal/analyzer"
	"github.com/SaurabhMV/price-tracking/internal/calculator"
	"github.com/SaurabhMV/price-tracking/internal/collector"
	"github.com/SaurabhMV/price-tracking/internal/notifier"
	"github.com/SaurabhMV/price-tracking/internal/recorder"
	"github.com/SaurabhMV/price-tracking/internal/watch"
)

// Scheduler runs the scan and digest cron tasks. Every scan refetches the
// full window and recomputes the pipeline from scratch; the watch manager
// decides which crossovers are new enough to alert.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Params    calculator.Params
	Watch     *watch.Manager
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, params calculator.Params,
	wm *watch.Manager, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Params:    params,
		Watch:     wm,
		Notifier:  tn,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// RegisterAll registers the scan and digest tasks.
func (s *Scheduler) RegisterAll(scanCron, digestCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	if _, err := s.Cron.AddFunc(digestCron, s.digestTask); err != nil {
		return fmt.Errorf("register digest task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan task immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

// analyze fetches the current window and runs the pipeline over it.
func (s *Scheduler) analyze() (*analyzer.Report, error) {
	series, err := s.Collector.Collect()
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}
	return analyzer.Analyze(series, s.Params)
}

// scanTask recomputes the pipeline and alerts crossovers that are newer than
// the last alerted one for this symbol.
func (s *Scheduler) scanTask() {
	log.Println("[INFO] running scan task")
	report, err := s.analyze()
	if err != nil {
		log.Printf("[ERROR] scan: %v", err)
		return
	}
	symbol := report.Series.Symbol

	for _, ev := range report.Events {
		if !s.Watch.ShouldAlert(symbol, ev.Time) {
			continue
		}
		s.trySend(notifier.FormatCrossoverAlert(symbol, ev))
		s.Watch.MarkAlerted(symbol, ev.Time)
		if err := s.Recorder.RecordCrossover(symbol, ev); err != nil {
			log.Printf("[ERROR] record crossover: %v", err)
		}
	}

	s.record(report)
}

// digestTask pushes the full scan report regardless of new events.
func (s *Scheduler) digestTask() {
	log.Println("[INFO] running digest task")
	report, err := s.analyze()
	if err != nil {
		log.Printf("[ERROR] digest: %v", err)
		s.trySend(fmt.Sprintf("❌ digest failed: %v", err))
		return
	}
	s.trySend(notifier.FormatScanReport(report))
	s.record(report)
}

func (s *Scheduler) record(report *analyzer.Report) {
	symbol := report.Series.Symbol
	n := report.Series.Len()

	snap := &recorder.ScanSnapshot{
		Symbol:   symbol,
		Interval: report.Series.Interval,
		BarCount: n,
		Summary:  report.Summary,
	}
	if n > 0 {
		snap.LastClose = report.Series.Bars[n-1].Close
		snap.Trend = report.States[n-1]
		snap.RSI = report.Frame.RSI[n-1]
	}
	if report.Open != nil {
		snap.OpenEntry = report.Open.EntryPrice
	}
	if err := s.Recorder.RecordScan(snap); err != nil {
		log.Printf("[ERROR] record scan: %v", err)
	}
	if err := s.Recorder.RecordTrades(symbol, report.Trades); err != nil {
		log.Printf("[ERROR] record trades: %v", err)
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/scan":
		s.scanTask()
		return "Scan finished."
	case "/report", "/summary":
		report, err := s.analyze()
		if err != nil {
			return fmt.Sprintf("❌ %v", err)
		}
		return notifier.FormatScanReport(report)
	case "/trades":
		report, err := s.analyze()
		if err != nil {
			return fmt.Sprintf("❌ %v", err)
		}
		return notifier.FormatTradeLedger(report)
	default:
		return "Commands:\n• /scan — rescan and alert new crossovers\n• /report — full indicator & backtest report\n• /trades — closed trade ledger"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
