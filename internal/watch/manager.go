// Package watch tracks which crossover events have already been alerted, so
// periodic rescans and process restarts never push the same event twice.
package watch

import (
	"log"
	"sync"
	"time"

	"github.com/SaurabhMV/price-tracking/internal/model"
)

// Manager guards the alert state with a mutex and persists every change.
type Manager struct {
	mu       sync.Mutex
	state    *model.AlertState
	filePath string
}

// NewManager creates a Manager, loading or initializing state from disk.
func NewManager(filePath string) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	m := &Manager{state: state, filePath: filePath}
	if err := m.save(); err != nil {
		return nil, err
	}
	return m, nil
}

// ShouldAlert reports whether an event at t for the symbol is newer than
// anything alerted before.
func (m *Manager) ShouldAlert(symbol string, t time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	last, ok := m.state.LastAlerts[symbol]
	return !ok || t.After(last)
}

// MarkAlerted records that events up to t for the symbol have been pushed.
func (m *Manager) MarkAlerted(symbol string, t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if last, ok := m.state.LastAlerts[symbol]; ok && !t.After(last) {
		return
	}
	m.state.LastAlerts[symbol] = t
	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save alert state: %v", err)
	}
}

// LastAlert returns the last alerted event time for the symbol, if any.
func (m *Manager) LastAlert(symbol string) (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.state.LastAlerts[symbol]
	return t, ok
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
