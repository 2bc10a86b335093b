//+build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/unicsmcr/bizdash/authorization"
	"github.com/unicsmcr/bizdash/config"
	"github.com/unicsmcr/bizdash/environment"
	"github.com/unicsmcr/bizdash/repositories"
	"github.com/unicsmcr/bizdash/resources"
	"github.com/unicsmcr/bizdash/routers"
	v1 "github.com/unicsmcr/bizdash/routers/api/v1"
	"github.com/unicsmcr/bizdash/routers/frontend"
	"github.com/unicsmcr/bizdash/services/multiplexers"
	"github.com/unicsmcr/bizdash/services/rest"
	"github.com/unicsmcr/bizdash/upstream"
	"github.com/unicsmcr/bizdash/utils"
)

var backendSet = wire.NewSet(
	environment.NewEnv,
	utils.NewLogger,
	config.NewAppConfig,
	upstream.NewClient,
	rest.NewRestResourceService,
	resources.NewDefaultCatalog,
	utils.NewTimeProvider,
)

func InitializeServer() (Server, func(), error) {
	wire.Build(
		backendSet,
		NewServer,
		routers.NewMainRouter,
		frontend.NewRouter,
		v1.NewAPIV1Router,
		authorization.NewAuthorizer,
		multiplexers.NewSessionService,
		repositories.NewSessionRepository,
		utils.NewRedisClient,
		utils.NewDatabase,
	)
	return Server{}, nil, nil
}

func InitializeCLI() (*CLI, error) {
	wire.Build(
		backendSet,
		wire.Struct(new(CLI), "*"),
	)
	return nil, nil
}
