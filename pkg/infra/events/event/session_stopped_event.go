package event

type SessionStoppedEvent struct {
	SessionID string `json:"session_id"`
	DeviceID  string `json:"device_id"`
	Reason    string `json:"reason"`
}

func (e SessionStoppedEvent) Type() string {
	return SessionStoppedEventType
}
