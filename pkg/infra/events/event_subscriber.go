package events

import (
	"context"

	"github.com/NeonArcade/PlayBill/pkg/infra/events/event"
)

type EventSubscriber[T event.Event] interface {
	OnEvent(ctx context.Context, ev T) error
}
