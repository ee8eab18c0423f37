package realtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates the client shared by sessions, rate limiting and the
// invalidation bus. An unreachable server is logged, not fatal: the limiter
// fails open and sessions surface errors per request.
func NewRedis(addr, password string, db int, log *slog.Logger) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis not reachable", "addr", addr, "error", err)
	} else {
		log.Info("redis connected", "addr", addr)
	}
	return rdb
}
