package domain

import "time"

// Alarm is a logged sensor event.
type Alarm struct {
	ID            int64     `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Temperature   float64   `json:"temperature"`
	SmokeDetected bool      `json:"smoke_detected"`
	FireDetected  bool      `json:"fire_detected"`
	Cleared       bool      `json:"cleared"`
}

// Alarm column names shared by every store.
const (
	FieldID            = "id"
	FieldTimestamp     = "timestamp"
	FieldTemperature   = "temperature"
	FieldSmokeDetected = "smoke_detected"
	FieldFireDetected  = "fire_detected"
	FieldCleared       = "cleared"
)
