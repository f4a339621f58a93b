package events

import (
	"context"
	"encoding/json"

	"github.com/NeonArcade/PlayBill/pkg/cache"
	"github.com/NeonArcade/PlayBill/pkg/infra/events/channel"
	"github.com/NeonArcade/PlayBill/pkg/infra/events/event"
)

type redisEventPublisher struct {
	cache   *cache.Cache
	channel channel.Channel
}

func NewRedisEventPublisher(cache *cache.Cache, channel channel.Channel) EventPublisher {
	return &redisEventPublisher{
		cache:   cache,
		channel: channel,
	}
}

func (p *redisEventPublisher) Publish(ctx context.Context, ev event.Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	envelope := RedisMessage{
		Type:  ev.Type(),
		Event: b,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	return p.cache.Client().Publish(ctx, string(p.channel), data).Err()
}
