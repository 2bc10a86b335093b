package environment

import (
	"os"

	"go.uber.org/zap"
)

// names of env vars
const (
	Environment   = "ENVIRONMENT"
	Port          = "PORT"
	APIURL        = "API_URL"
	MongoHost     = "MONGO_HOST"
	MongoDatabase = "MONGO_DATABASE"
	MongoUser     = "MONGO_USER"
	MongoPassword = "MONGO_PASSWORD"
	JWTSecret     = "JWT_SECRET"
	RedisAddr     = "REDIS_ADDR"
	ConfigDir     = "CONFIG_DIR"
)

// optional vars are read without warning when they are not defined
var optionalVars = []string{RedisAddr, ConfigDir}

var requiredVars = []string{
	Environment,
	Port,
	APIURL,
	MongoHost,
	MongoDatabase,
	MongoUser,
	MongoPassword,
	JWTSecret,
}

// NewEnv creates an Env with loaded environment variables
func NewEnv(logger *zap.Logger) *Env {
	env := Env{
		vars: map[string]string{},
	}

	for _, name := range requiredVars {
		env.vars[name] = valueOfEnvVar(logger, name)
	}
	for _, name := range optionalVars {
		env.vars[name] = os.Getenv(name)
	}

	return &env
}

// Env is a struct to store environment variables in an immutable collection
type Env struct {
	vars map[string]string
}

// Get returns an environment variable with the specified name
func (env *Env) Get(variableName string) string {
	return env.vars[variableName]
}

func valueOfEnvVar(logger *zap.Logger, varName string) string {
	envVar := os.Getenv(varName)
	if len(envVar) == 0 {
		logger.Warn("expected environment variable not defined", zap.String("var", varName))
	}

	return envVar
}
