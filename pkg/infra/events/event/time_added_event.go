package event

type TimeAddedEvent struct {
	SessionID          string `json:"session_id"`
	AdditionalMinutes  int    `json:"additional_minutes"`
	AdditionalAmount   string `json:"additional_amount"`
	NewDurationMinutes int    `json:"new_duration_minutes"`
}

func (e TimeAddedEvent) Type() string {
	return TimeAddedEventType
}
