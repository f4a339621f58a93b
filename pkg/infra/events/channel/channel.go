package channel

type Channel string

const (
	// SessionEventsChannel carries every session lifecycle event; the
	// websocket hub subscribes to it on behalf of admin panel clients.
	SessionEventsChannel Channel = "playbill:sessions"
)
