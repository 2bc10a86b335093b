package repositories

import (
	"context"

	"github.com/unicsmcr/bizdash/entities"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SessionRepository is the repository for Session objects
type SessionRepository struct {
	*mongo.Collection
}

const sessionCollection = "sessions"

// NewSessionRepository creates a new SessionRepository.
// Mongo removes sessions on its own once their expiry has passed.
func NewSessionRepository(db *mongo.Database) (*SessionRepository, error) {
	_, err := db.Collection(sessionCollection).Indexes().CreateMany(
		context.Background(),
		[]mongo.IndexModel{
			{
				Keys:    bson.D{{Key: string(entities.SessionExpiresAt), Value: 1}},
				Options: options.Index().SetExpireAfterSeconds(0),
			},
			{
				Keys: bson.D{{Key: string(entities.SessionEmail), Value: 1}},
			},
		},
	)

	if err != nil {
		return nil, err
	}

	return &SessionRepository{
		Collection: db.Collection(sessionCollection),
	}, nil
}
