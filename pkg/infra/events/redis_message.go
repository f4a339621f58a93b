package events

import "encoding/json"

// RedisMessage is the pub/sub envelope: the event type name plus the
// marshalled event payload.
type RedisMessage struct {
	Type  string          `json:"type"`
	Event json.RawMessage `json:"event"`
}
