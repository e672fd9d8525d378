package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/SaurabhMV/price-tracking/internal/analyzer"
	"github.com/SaurabhMV/price-tracking/internal/model"
)

func fmtIndicator(v float64) string {
	if !model.Defined(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatCrossoverAlert formats a single crossover event into a push message.
func FormatCrossoverAlert(symbol string, ev model.CrossoverEvent) string {
	arrow := "🔻"
	if ev.Kind == model.BuyCross {
		arrow = "🔺"
	}
	return fmt.Sprintf("%s <b>%s %s</b>\n\nPrice: %.2f\nBar: %s",
		arrow, symbol, ev.Kind, ev.Price, ev.Time.Format("2006-01-02 15:04"))
}

// FormatScanReport formats a full pipeline report into a Telegram message.
func FormatScanReport(report *analyzer.Report) string {
	var b strings.Builder
	s := report.Series
	n := s.Len()

	b.WriteString(fmt.Sprintf("📊 <b>%s scan</b> | %s/%s | %s\n\n",
		s.Symbol, s.Interval, s.Period, time.Now().Format("2006-01-02")))

	if n == 0 {
		b.WriteString("No bars in series.\n")
		return b.String()
	}
	last := n - 1
	b.WriteString(fmt.Sprintf("Close: %.2f | Trend: %s\n", s.Bars[last].Close, report.States[last]))
	b.WriteString(fmt.Sprintf("SMA short: %s | SMA long: %s\n",
		fmtIndicator(report.Frame.SMAShort[last]), fmtIndicator(report.Frame.SMALong[last])))
	b.WriteString(fmt.Sprintf("RSI: %s\n", fmtIndicator(report.Frame.RSI[last])))
	b.WriteString(fmt.Sprintf("Support: %s | Resistance: %s\n\n",
		fmtIndicator(report.Frame.Support[last]), fmtIndicator(report.Frame.Resistance[last])))

	b.WriteString(fmt.Sprintf("Crossovers in window: %d\n", len(report.Events)))
	if ev := report.Events; len(ev) > 0 {
		lastEv := ev[len(ev)-1]
		b.WriteString(fmt.Sprintf("Last: %s @ %.2f (%s)\n",
			lastEv.Kind, lastEv.Price, lastEv.Time.Format("2006-01-02")))
	}
	b.WriteString("\n" + FormatSummary(report.Summary))
	if report.Open != nil {
		b.WriteString(fmt.Sprintf("\n📌 Open position: entry %.2f on %s (not in stats)",
			report.Open.EntryPrice, report.Open.EntryTime.Format("2006-01-02")))
	}
	return b.String()
}

// FormatSummary formats the backtest statistics block.
func FormatSummary(sum model.PerformanceSummary) string {
	var b strings.Builder
	b.WriteString("💰 <b>Backtest (window)</b>\n")
	b.WriteString(fmt.Sprintf("Closed trades: %d\n", sum.TradeCount))
	if sum.TradeCount == 0 {
		b.WriteString("No closed trades in this window.\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("Total return: %+.2f%%\n", sum.TotalReturnPct))
	b.WriteString(fmt.Sprintf("Win rate: %.0f%%\n", sum.WinRate*100))
	b.WriteString(fmt.Sprintf("Avg per trade: %+.2f%%\n", sum.AvgProfitPct))
	return b.String()
}

// FormatTradeLedger lists the closed trades of a report.
func FormatTradeLedger(report *analyzer.Report) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📒 <b>%s trades</b> (%s/%s)\n\n",
		report.Series.Symbol, report.Series.Interval, report.Series.Period))
	if len(report.Trades) == 0 {
		b.WriteString("No closed trades in this window.")
		return b.String()
	}
	for i, t := range report.Trades {
		b.WriteString(fmt.Sprintf("%d. %s %.2f → %s %.2f  %+.2f%%\n",
			i+1,
			t.EntryTime.Format("01-02"), t.EntryPrice,
			t.ExitTime.Format("01-02"), t.ExitPrice,
			t.ProfitPct))
	}
	if report.Open != nil {
		b.WriteString(fmt.Sprintf("\nOpen: %s %.2f (unrealized)",
			report.Open.EntryTime.Format("01-02"), report.Open.EntryPrice))
	}
	return b.String()
}
