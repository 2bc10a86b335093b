package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/environment"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const databaseName = "bizdash"

// NewDatabase connects to the MongoDB instance defined by the MONGO_* env vars.
// The returned cleanup function disconnects the client.
func NewDatabase(logger *zap.Logger, env *environment.Env) (*mongo.Database, func(), error) {
	connectionURL := fmt.Sprintf(`mongodb://%s:%s@%s/%s`, env.Get(environment.MongoUser), env.Get(environment.MongoPassword),
		env.Get(environment.MongoHost), env.Get(environment.MongoDatabase))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionURL))
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not connect to database")
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, errors.Wrap(err, "could not ping database")
	}
	logger.Info("connected to database")

	cleanup := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("could not disconnect from database", zap.Error(err))
		}
	}

	return client.Database(databaseName), cleanup, nil
}
