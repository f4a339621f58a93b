package event

import "time"

type SessionStartedEvent struct {
	SessionID       string    `json:"session_id"`
	DeviceID        string    `json:"device_id"`
	CustomerName    string    `json:"customer_name"`
	DurationMinutes int       `json:"duration_minutes"`
	StartTime       time.Time `json:"start_time"`
}

func (e SessionStartedEvent) Type() string {
	return SessionStartedEventType
}
