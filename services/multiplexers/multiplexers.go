package multiplexers

import (
	goredis "github.com/redis/go-redis/v9"
	"github.com/unicsmcr/bizdash/config"
	"github.com/unicsmcr/bizdash/repositories"
	"github.com/unicsmcr/bizdash/services"
	"github.com/unicsmcr/bizdash/services/mongo"
	"github.com/unicsmcr/bizdash/services/redis"
	"github.com/unicsmcr/bizdash/utils"
	"go.uber.org/zap"
)

// NewSessionService returns the Mongo SessionService, cached in Redis when a Redis client is available
func NewSessionService(logger *zap.Logger, cfg *config.AppConfig, timeProvider utils.TimeProvider,
	sessionRepository *repositories.SessionRepository, redisClient *goredis.Client) services.SessionService {
	sessionService := mongo.NewMongoSessionService(logger, cfg, timeProvider, sessionRepository)
	if redisClient == nil {
		return sessionService
	}

	return redis.NewCachedSessionService(logger, cfg, timeProvider, redisClient, sessionService)
}
