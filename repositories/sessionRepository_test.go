// +build integration

package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/bizdash/testutils"
	"go.mongodb.org/mongo-driver/bson"
)

func Test_NewSessionRepository__should_return_sessions_mongo_collection(t *testing.T) {
	db := testutils.ConnectToIntegrationTestDB(t)

	sRepo, err := NewSessionRepository(db)
	assert.NoError(t, err)

	assert.Equal(t, "sessions", sRepo.Name())
	db.Collection("sessions").Drop(context.Background())
}

func Test_NewSessionRepository__create_required_number_of_indexes(t *testing.T) {
	db := testutils.ConnectToIntegrationTestDB(t)

	_, err := NewSessionRepository(db)
	assert.NoError(t, err)

	cur, err := db.Collection("sessions").Indexes().List(context.Background())
	assert.NoError(t, err)
	defer cur.Close(context.Background())

	var noOfIndexes int
	var ttlIndexes int
	for cur.Next(context.Background()) {
		var index bson.M
		err = cur.Decode(&index)
		assert.NoError(t, err)
		if _, ok := index["expireAfterSeconds"]; ok {
			ttlIndexes++
		}
		noOfIndexes++
	}

	assert.Equal(t, 3, noOfIndexes)
	assert.Equal(t, 1, ttlIndexes)
	db.Collection("sessions").Drop(context.Background())
}
