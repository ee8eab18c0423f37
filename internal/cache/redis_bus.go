package cache

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const invalidateChannel = "backoffice:invalidate"

type busMessage struct {
	Origin   string   `json:"origin"`
	Prefixes []string `json:"prefixes"`
}

// RedisBus fans cache invalidations out to every instance of the service.
type RedisBus struct {
	rdb    *redis.Client
	origin string
	log    *slog.Logger
}

func NewRedisBus(rdb *redis.Client, log *slog.Logger) *RedisBus {
	return &RedisBus{rdb: rdb, origin: uuid.NewString(), log: log}
}

// Publish is meant to be registered with Store.OnInvalidate.
func (b *RedisBus) Publish(prefixes []string) {
	payload, err := json.Marshal(busMessage{Origin: b.origin, Prefixes: prefixes})
	if err != nil {
		b.log.Error("marshal invalidation", "error", err)
		return
	}
	if err := b.rdb.Publish(context.Background(), invalidateChannel, payload).Err(); err != nil {
		b.log.Warn("publish invalidation", "error", err)
	}
}

// Run applies invalidations published by other instances until ctx ends.
// onRemote is called after each remote invalidation has been applied.
func (b *RedisBus) Run(ctx context.Context, store *Store, onRemote func(prefixes []string)) {
	sub := b.rdb.Subscribe(ctx, invalidateChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var m busMessage
			if err := json.Unmarshal([]byte(msg.Payload), &m); err != nil {
				b.log.Warn("bad invalidation message", "error", err)
				continue
			}
			if m.Origin == b.origin || len(m.Prefixes) == 0 {
				continue
			}
			store.Apply(m.Prefixes...)
			if onRemote != nil {
				onRemote(m.Prefixes)
			}
		}
	}
}
