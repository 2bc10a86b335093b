package main

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/bizdash/environment"
	"github.com/unicsmcr/bizdash/routers"
)

const templatesGlob = "templates/*/*.gohtml"

type Server struct {
	*gin.Engine
	Port string
}

func NewServer(mainRouter routers.MainRouter, env *environment.Env) Server {
	if env.Get(environment.Environment) == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := gin.Default()
	server.LoadHTMLGlob(templatesGlob)

	mainRouter.RegisterRoutes(server.Group("/"))

	return Server{
		Engine: server,
		Port:   env.Get(environment.Port),
	}
}
