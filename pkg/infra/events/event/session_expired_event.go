package event

type SessionExpiredEvent struct {
	SessionID      string  `json:"session_id"`
	DeviceID       string  `json:"device_id"`
	OverdueMinutes float64 `json:"overdue_minutes"`
}

func (e SessionExpiredEvent) Type() string {
	return SessionExpiredEventType
}
