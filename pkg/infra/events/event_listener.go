package events

import (
	"context"
	"reflect"

	"github.com/NeonArcade/PlayBill/pkg/infra/events/channel"
)

type EventListener interface {
	Register(eventType reflect.Type, subscriber interface{})
	Listen(ctx context.Context, channels ...channel.Channel)
}
