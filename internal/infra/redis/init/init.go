package infra_redis_init

import (
	"fmt"
	"log/slog"

	"github.com/go-redis/redis"

	"github.com/kkcodebase/movie-mood-predictor/internal/config"
)

// EstablishConn builds the redis client. An unreachable store at startup
// is logged, not fatal: the service runs in degraded mode and every store
// call site carries its own fallback.
func EstablishConn(cfg config.RedisStore, logger *slog.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	if err := client.Ping().Err(); err != nil {
		logger.Warn("redis ping failed, starting in degraded mode",
			slog.String("error", err.Error()),
		)
	}

	return client
}
