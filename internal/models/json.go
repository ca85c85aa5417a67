package models

// StateJSON is the JSON representation of the home screen state.
type StateJSON struct {
	Geo      *GeoRecord     `json:"geo"`
	Error    string         `json:"error,omitempty"`
	History  []HistoryEntry `json:"history"`
	Selected []string       `json:"selected"`
}
