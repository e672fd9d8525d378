package watch

import (
	"path/filepath"
	"testing"
	"time"
)

func TestManager_AlertDedup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.json")
	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	evTime := time.Date(2026, 6, 1, 15, 30, 0, 0, time.UTC)
	if !m.ShouldAlert("AAPL", evTime) {
		t.Fatal("fresh state should alert")
	}
	m.MarkAlerted("AAPL", evTime)

	if m.ShouldAlert("AAPL", evTime) {
		t.Error("same event must not alert twice")
	}
	if m.ShouldAlert("AAPL", evTime.Add(-time.Hour)) {
		t.Error("older events must not alert")
	}
	if !m.ShouldAlert("AAPL", evTime.Add(time.Hour)) {
		t.Error("newer events must alert")
	}
	if !m.ShouldAlert("MSFT", evTime) {
		t.Error("state is per symbol")
	}
}

func TestManager_PersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.json")
	evTime := time.Date(2026, 6, 1, 15, 30, 0, 0, time.UTC)

	m1, err := NewManager(path)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	m1.MarkAlerted("AAPL", evTime)

	m2, err := NewManager(path)
	if err != nil {
		t.Fatalf("reload manager: %v", err)
	}
	if m2.ShouldAlert("AAPL", evTime) {
		t.Error("alert state must survive a restart")
	}
	last, ok := m2.LastAlert("AAPL")
	if !ok || !last.Equal(evTime) {
		t.Errorf("expected last alert %v, got %v (ok=%v)", evTime, last, ok)
	}
}

func TestManager_MarkAlertedKeepsNewest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.json")
	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	newer := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)

	m.MarkAlerted("AAPL", newer)
	m.MarkAlerted("AAPL", older) // out-of-order mark must not rewind

	last, _ := m.LastAlert("AAPL")
	if !last.Equal(newer) {
		t.Errorf("expected %v, got %v", newer, last)
	}
}
