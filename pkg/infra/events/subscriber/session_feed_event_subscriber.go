package subscriber

import (
	"context"

	"github.com/NeonArcade/PlayBill/pkg/infra/events"
	"github.com/NeonArcade/PlayBill/pkg/infra/events/event"
	"github.com/NeonArcade/PlayBill/pkg/infra/websocket"
	"github.com/sirupsen/logrus"
)

// SessionFeedEventSubscriber forwards one session event type to the
// websocket hub. Instantiated once per event type at startup.
type SessionFeedEventSubscriber[T event.Event] struct {
	logger *logrus.Logger
	hub    *websocket.Hub
}

func NewSessionFeedEventSubscriber[T event.Event](
	logger *logrus.Logger,
	hub *websocket.Hub,
) events.EventSubscriber[T] {
	return &SessionFeedEventSubscriber[T]{
		logger: logger,
		hub:    hub,
	}
}

func (s *SessionFeedEventSubscriber[T]) OnEvent(ctx context.Context, evt T) error {
	s.logger.WithField("event", evt.Type()).Debug("forwarding session event to websocket feed")
	s.hub.Broadcast(evt.Type(), evt)
	return nil
}
