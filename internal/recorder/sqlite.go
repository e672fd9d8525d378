package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/SaurabhMV/price-tracking/internal/model"
)

// SQLiteRecorder persists scan history to a SQLite database. Trades and
// crossovers are keyed by their bar timestamp, so re-recording the same
// recomputed history is idempotent.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read
	// while the bot writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scans (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			symbol       TEXT NOT NULL,
			interval     TEXT,
			bar_count    INTEGER,
			last_close   REAL,
			trend        TEXT,
			rsi          REAL,
			trade_count  INTEGER,
			total_return REAL,
			win_rate     REAL,
			avg_profit   REAL,
			open_entry   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_ts ON scans(timestamp)`,

		`CREATE TABLE IF NOT EXISTS crossovers (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol    TEXT NOT NULL,
			bar_time  INTEGER NOT NULL,
			kind      TEXT NOT NULL,
			price     REAL,
			UNIQUE(symbol, bar_time)
		)`,

		`CREATE TABLE IF NOT EXISTS trades (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol      TEXT NOT NULL,
			entry_time  INTEGER NOT NULL,
			entry_price REAL,
			exit_time   INTEGER,
			exit_price  REAL,
			profit_pct  REAL,
			UNIQUE(symbol, entry_time)
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordScan(snap *ScanSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO scans
		(timestamp, symbol, interval, bar_count, last_close, trend, rsi,
		 trade_count, total_return, win_rate, avg_profit, open_entry)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Symbol, snap.Interval, snap.BarCount,
		snap.LastClose, snap.Trend.String(), snap.RSI,
		snap.Summary.TradeCount, snap.Summary.TotalReturnPct,
		snap.Summary.WinRate, snap.Summary.AvgProfitPct, snap.OpenEntry,
	)
	return err
}

func (r *SQLiteRecorder) RecordCrossover(symbol string, ev model.CrossoverEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT OR IGNORE INTO crossovers (symbol, bar_time, kind, price)
		VALUES (?,?,?,?)`,
		symbol, ev.Time.Unix(), string(ev.Kind), ev.Price,
	)
	return err
}

func (r *SQLiteRecorder) RecordTrades(symbol string, trades []model.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range trades {
		if _, err := r.db.Exec(`INSERT OR IGNORE INTO trades
			(symbol, entry_time, entry_price, exit_time, exit_price, profit_pct)
			VALUES (?,?,?,?,?,?)`,
			symbol, t.EntryTime.Unix(), t.EntryPrice,
			t.ExitTime.Unix(), t.ExitPrice, t.ProfitPct,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
