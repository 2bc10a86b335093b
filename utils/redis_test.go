package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/bizdash/environment"
	"github.com/unicsmcr/bizdash/testutils"
	"go.uber.org/zap"
)

func Test_NewRedisClient__should_return_nil_client_when_REDIS_ADDR_not_set(t *testing.T) {
	restore := testutils.UnsetVars(environment.RedisAddr)
	defer restore()

	client, cleanup := NewRedisClient(zap.NewNop(), environment.NewEnv(zap.NewNop()))
	assert.Nil(t, client)
	assert.NotNil(t, cleanup)
	cleanup()
}

func Test_NewRedisClient__should_return_nil_client_when_redis_is_unreachable(t *testing.T) {
	restore := testutils.SetEnvVars(map[string]string{environment.RedisAddr: "127.0.0.1:1"})
	defer restore()

	client, cleanup := NewRedisClient(zap.NewNop(), environment.NewEnv(zap.NewNop()))
	assert.Nil(t, client)
	cleanup()
}
