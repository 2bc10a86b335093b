// Package redis caches sessions in Redis in front of another SessionService
package redis

import (
	"context"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/unicsmcr/bizdash/config"
	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/services"
	"github.com/unicsmcr/bizdash/upstream"
	"github.com/unicsmcr/bizdash/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const keyPrefix = "session:"

// Cache is the subset of the Redis client the session cache uses
type Cache interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

type cachedSessionService struct {
	logger       *zap.Logger
	cfg          *config.AppConfig
	timeProvider utils.TimeProvider
	cache        Cache
	inner        services.SessionService
}

// NewCachedSessionService creates a SessionService that serves sessions from cache
// and falls back to inner on a miss. Cache failures never fail a request.
func NewCachedSessionService(logger *zap.Logger, cfg *config.AppConfig, timeProvider utils.TimeProvider,
	cache Cache, inner services.SessionService) services.SessionService {
	return &cachedSessionService{
		logger:       logger,
		cfg:          cfg,
		timeProvider: timeProvider,
		cache:        cache,
		inner:        inner,
	}
}

func key(id string) string {
	return keyPrefix + id
}

func (s *cachedSessionService) CreateSession(ctx context.Context, login upstream.LoginResult) (*entities.Session, error) {
	session, err := s.inner.CreateSession(ctx, login)
	if err != nil {
		return nil, err
	}

	s.store(ctx, *session)
	return session, nil
}

func (s *cachedSessionService) GetSession(ctx context.Context, id string) (*entities.Session, error) {
	if len(id) == 0 {
		return nil, services.ErrInvalidID
	}

	cached, err := s.cache.Get(ctx, key(id)).Bytes()
	switch err {
	case nil:
		var session entities.Session
		if err := bson.Unmarshal(cached, &session); err != nil {
			s.logger.Warn("could not decode cached session", zap.String("id", id), zap.Error(err))
			s.evict(ctx, id)
			break
		}
		if session.Expired(s.timeProvider.Now()) {
			s.evict(ctx, id)
			return nil, services.ErrSessionExpired
		}
		return &session, nil
	case goredis.Nil:
	default:
		s.logger.Warn("could not read session from cache", zap.String("id", id), zap.Error(err))
	}

	session, err := s.inner.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	s.store(ctx, *session)
	return session, nil
}

func (s *cachedSessionService) GetSessionsForEmail(ctx context.Context, email string) ([]entities.Session, error) {
	return s.inner.GetSessionsForEmail(ctx, email)
}

func (s *cachedSessionService) DeleteSession(ctx context.Context, id string) error {
	if len(id) == 0 {
		return services.ErrInvalidID
	}

	err := s.inner.DeleteSession(ctx, id)
	s.evict(ctx, id)
	return err
}

func (s *cachedSessionService) DeleteSessionsForEmail(ctx context.Context, email string) error {
	sessions, err := s.inner.GetSessionsForEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, "could not get sessions to evict")
	}

	ids := make([]string, 0, len(sessions))
	for _, session := range sessions {
		ids = append(ids, session.ID)
	}
	err = s.inner.DeleteSessionsForEmail(ctx, email)
	s.evict(ctx, ids...)
	return err
}

// store caches session until the configured TTL or its expiry, whichever comes first
func (s *cachedSessionService) store(ctx context.Context, session entities.Session) {
	ttl := time.Duration(s.cfg.SessionCache.TTL) * time.Second
	if untilExpiry := session.ExpiresAt.Sub(s.timeProvider.Now()); untilExpiry < ttl {
		ttl = untilExpiry
	}
	if ttl <= 0 {
		return
	}

	encoded, err := bson.Marshal(session)
	if err != nil {
		s.logger.Warn("could not encode session for cache", zap.String("id", session.ID), zap.Error(err))
		return
	}

	if err := s.cache.Set(ctx, key(session.ID), encoded, ttl).Err(); err != nil {
		s.logger.Warn("could not cache session", zap.String("id", session.ID), zap.Error(err))
	}
}

func (s *cachedSessionService) evict(ctx context.Context, ids ...string) {
	if len(ids) == 0 {
		return
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = key(id)
	}

	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("could not evict sessions from cache", zap.Strings("ids", ids), zap.Error(err))
	}
}
