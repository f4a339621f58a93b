package event

type PaymentConfirmedEvent struct {
	SessionID   string `json:"session_id"`
	TotalAmount string `json:"total_amount"`
}

func (e PaymentConfirmedEvent) Type() string {
	return PaymentConfirmedEventType
}
