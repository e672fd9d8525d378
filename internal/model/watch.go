package model

import "time"

// AlertState remembers the last alerted crossover per symbol so restarts do
// not re-alert events that were already pushed.
type AlertState struct {
	LastAlerts map[string]time.Time `json:"last_alerts"`
	UpdatedAt  time.Time            `json:"updated_at"`
}
