package websocket

import (
	infraWebsocket "github.com/NeonArcade/PlayBill/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"
)

// SessionFeedHandler holds a client connection open on the live session
// feed. The feed is push-only; inbound frames are read and discarded so
// ping/pong and close frames keep working.
type SessionFeedHandler struct {
	logger *logrus.Logger
	hub    *infraWebsocket.Hub
}

func NewSessionFeedHandler(logger *logrus.Logger, hub *infraWebsocket.Hub) *SessionFeedHandler {
	return &SessionFeedHandler{
		logger: logger,
		hub:    hub,
	}
}

func (h *SessionFeedHandler) Handle(conn *websocket.Conn) {
	if !h.hub.Register(conn) {
		h.logger.Warn("websocket feed at capacity, rejecting client")
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "feed at capacity"))
		_ = conn.Close()
		return
	}
	defer func() {
		h.hub.Unregister(conn)
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
