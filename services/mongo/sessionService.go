package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/config"
	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/repositories"
	"github.com/unicsmcr/bizdash/services"
	"github.com/unicsmcr/bizdash/upstream"
	"github.com/unicsmcr/bizdash/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type mongoSessionService struct {
	logger            *zap.Logger
	cfg               *config.AppConfig
	timeProvider      utils.TimeProvider
	sessionRepository *repositories.SessionRepository
}

// NewMongoSessionService creates a new SessionService that uses MongoDB as the storage technology
func NewMongoSessionService(logger *zap.Logger, cfg *config.AppConfig, timeProvider utils.TimeProvider,
	sessionRepository *repositories.SessionRepository) services.SessionService {
	return &mongoSessionService{
		logger:            logger,
		cfg:               cfg,
		timeProvider:      timeProvider,
		sessionRepository: sessionRepository,
	}
}

func (s *mongoSessionService) CreateSession(ctx context.Context, login upstream.LoginResult) (*entities.Session, error) {
	now := s.timeProvider.Now().UTC().Truncate(time.Millisecond)

	session := services.NewSessionFromLogin(uuid.New().String(), login, now,
		time.Duration(s.cfg.Auth.SessionLifetime)*time.Second)

	_, err := s.sessionRepository.InsertOne(ctx, session)
	if err != nil {
		return nil, errors.Wrap(err, "could not create new session")
	}

	return &session, nil
}

func (s *mongoSessionService) GetSession(ctx context.Context, id string) (*entities.Session, error) {
	if len(id) == 0 {
		return nil, services.ErrInvalidID
	}

	res := s.sessionRepository.FindOne(ctx, bson.M{
		string(entities.SessionID): id,
	})

	var session entities.Session
	err := res.Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for session with id")
	}

	// the TTL monitor only runs periodically, so expired sessions may still be stored
	if session.Expired(s.timeProvider.Now()) {
		return nil, services.ErrSessionExpired
	}

	return &session, nil
}

func (s *mongoSessionService) GetSessionsForEmail(ctx context.Context, email string) ([]entities.Session, error) {
	cur, err := s.sessionRepository.Find(ctx, bson.M{
		string(entities.SessionEmail):     email,
		string(entities.SessionExpiresAt): bson.M{"$gt": s.timeProvider.Now()},
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for sessions with email")
	}
	defer cur.Close(ctx)

	sessions := []entities.Session{}
	for cur.Next(ctx) {
		var session entities.Session
		if err := cur.Decode(&session); err != nil {
			return nil, errors.Wrap(err, "could not decode session")
		}
		sessions = append(sessions, session)
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(err, "could not decode result")
	}

	return sessions, nil
}

func (s *mongoSessionService) DeleteSession(ctx context.Context, id string) error {
	if len(id) == 0 {
		return services.ErrInvalidID
	}

	res, err := s.sessionRepository.DeleteOne(ctx, bson.M{
		string(entities.SessionID): id,
	})
	if err != nil {
		return errors.Wrap(err, "could not delete session with id")
	} else if res.DeletedCount == 0 {
		return services.ErrNotFound
	}

	return nil
}

func (s *mongoSessionService) DeleteSessionsForEmail(ctx context.Context, email string) error {
	res, err := s.sessionRepository.DeleteMany(ctx, bson.M{
		string(entities.SessionEmail): email,
	})
	if err != nil {
		return errors.Wrap(err, "could not delete sessions with email")
	}

	s.logger.Debug("deleted sessions", zap.String("email", email), zap.Int64("count", res.DeletedCount))
	return nil
}
