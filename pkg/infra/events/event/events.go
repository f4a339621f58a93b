package event

import "reflect"

type Event interface {
	Type() string
}

var (
	SessionStartedEventType   = "session_started"
	SessionPausedEventType    = "session_paused"
	SessionResumedEventType   = "session_resumed"
	TimeAddedEventType        = "time_added"
	SessionExpiredEventType   = "session_expired"
	PaymentConfirmedEventType = "payment_confirmed"
	SessionStoppedEventType   = "session_stopped"
)

var Registry = map[string]reflect.Type{
	SessionStartedEventType:   reflect.TypeOf(SessionStartedEvent{}),
	SessionPausedEventType:    reflect.TypeOf(SessionPausedEvent{}),
	SessionResumedEventType:   reflect.TypeOf(SessionResumedEvent{}),
	TimeAddedEventType:        reflect.TypeOf(TimeAddedEvent{}),
	SessionExpiredEventType:   reflect.TypeOf(SessionExpiredEvent{}),
	PaymentConfirmedEventType: reflect.TypeOf(PaymentConfirmedEvent{}),
	SessionStoppedEventType:   reflect.TypeOf(SessionStoppedEvent{}),
}
