package event

import "time"

type SessionPausedEvent struct {
	SessionID   string    `json:"session_id"`
	PauseReason string    `json:"pause_reason"`
	PausedAt    time.Time `json:"paused_at"`
}

func (e SessionPausedEvent) Type() string {
	return SessionPausedEventType
}
