package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a client for the reference-data cache (FX rates,
// spread, commission config). Returns nil when REDIS_ADDR is unset or the
// server is unreachable; callers degrade by reading straight from MySQL.
func NewRedisClient(env Env) *redis.Client {
	if env.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: env.RedisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
