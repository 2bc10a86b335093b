package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/unicsmcr/bizdash/environment"
	"go.uber.org/zap"
)

// NewRedisClient connects to the Redis instance at REDIS_ADDR.
// A nil client is returned when REDIS_ADDR is not set or Redis cannot be reached,
// in which case sessions are served without a cache.
func NewRedisClient(logger *zap.Logger, env *environment.Env) (*redis.Client, func()) {
	addr := env.Get(environment.RedisAddr)
	if len(addr) == 0 {
		logger.Info("REDIS_ADDR not set, session cache disabled")
		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("could not connect to redis, session cache disabled", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return nil, func() {}
	}
	logger.Info("connected to redis", zap.String("addr", addr))

	return client, func() {
		if err := client.Close(); err != nil {
			logger.Error("could not close redis client", zap.Error(err))
		}
	}
}
