package domain

import "time"

// HistoryRecord is one validated suggestion persisted for later inspection.
type HistoryRecord struct {
	Timestamp   time.Time `json:"timestamp"`
	Query       string    `json:"query"`
	Command     string    `json:"command"`
	Description string    `json:"description"`
	Model       string    `json:"model"`
}
