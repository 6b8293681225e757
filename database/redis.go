package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/lshigami/quizdesk/config"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// NewRedisClient connects to Redis when REDIS_ADDR is set. It returns a nil
// client otherwise; callers fall back to in-process state.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR is not set, Redis-backed features use in-memory fallbacks")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return rdb.Close()
		},
	})

	log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection established")
	return rdb, nil
}
