package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/bizdash/routers/api/models"
	v1 "github.com/unicsmcr/bizdash/routers/api/v1"
	"github.com/unicsmcr/bizdash/routers/frontend"
	"go.uber.org/zap"
)

// MainRouter is the router registering every other router of bizdash
type MainRouter struct {
	models.BaseRouter
	logger         *zap.Logger
	apiV1          v1.APIV1Router
	frontendRouter frontend.Router
}

func NewMainRouter(logger *zap.Logger, apiV1Router v1.APIV1Router, frontendRouter frontend.Router) MainRouter {
	return MainRouter{
		logger:         logger,
		apiV1:          apiV1Router,
		frontendRouter: frontendRouter,
	}
}

// RegisterRoutes registers the API under /api/v1 and the pages under the root
func (r *MainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/heartbeat", r.Heartbeat)

	apiV1Group := routerGroup.Group("/api/v1")
	r.apiV1.RegisterRoutes(apiV1Group)

	r.frontendRouter.RegisterRoutes(routerGroup)
}
