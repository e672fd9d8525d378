package watch

import (
	"encoding/json"
	"os"
	"time"

	"github.com/SaurabhMV/price-tracking/internal/model"
)

// LoadState reads the alert state from a JSON file. Returns a zero state if
// the file doesn't exist.
func LoadState(filePath string) (*model.AlertState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.AlertState{LastAlerts: map[string]time.Time{}}, nil
		}
		return nil, err
	}
	var state model.AlertState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.LastAlerts == nil {
		state.LastAlerts = map[string]time.Time{}
	}
	return &state, nil
}

// SaveState writes the alert state to a JSON file.
func SaveState(filePath string, state *model.AlertState) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
