package event

type SessionResumedEvent struct {
	SessionID            string  `json:"session_id"`
	PauseDurationMinutes float64 `json:"pause_duration_minutes"`
}

func (e SessionResumedEvent) Type() string {
	return SessionResumedEventType
}
