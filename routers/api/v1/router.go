package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/bizdash/authorization"
	"github.com/unicsmcr/bizdash/config"
	"github.com/unicsmcr/bizdash/resources"
	"github.com/unicsmcr/bizdash/routers/api/models"
	"github.com/unicsmcr/bizdash/routers/common"
	"github.com/unicsmcr/bizdash/services"
	"github.com/unicsmcr/bizdash/upstream"
	"github.com/unicsmcr/bizdash/utils"
	"go.uber.org/zap"
)

type APIV1Router interface {
	models.Router
	Login(ctx *gin.Context)
	EmployeeLogin(ctx *gin.Context)
	Logout(ctx *gin.Context)
	GetSession(ctx *gin.Context)
	GetSessions(ctx *gin.Context)
	GetModules(ctx *gin.Context)
	GetDashboard(ctx *gin.Context)
	ListResource(ctx *gin.Context)
	ExportResource(ctx *gin.Context)
	GetResourceItem(ctx *gin.Context)
}

type apiV1Router struct {
	models.BaseRouter
	logger          *zap.Logger
	cfg             *config.AppConfig
	authorizer      authorization.Authorizer
	client          upstream.Client
	sessionService  services.SessionService
	resourceService services.ResourceService
	catalog         *resources.Catalog
	timeProvider    utils.TimeProvider
}

func NewAPIV1Router(logger *zap.Logger, cfg *config.AppConfig, authorizer authorization.Authorizer, client upstream.Client,
	sessionService services.SessionService, resourceService services.ResourceService, catalog *resources.Catalog,
	timeProvider utils.TimeProvider) APIV1Router {
	return &apiV1Router{
		logger:          logger,
		cfg:             cfg,
		authorizer:      authorizer,
		client:          client,
		sessionService:  sessionService,
		resourceService: resourceService,
		catalog:         catalog,
		timeProvider:    timeProvider,
	}
}

func (r *apiV1Router) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.Heartbeat)

	authGroup := routerGroup.Group("/auth")
	authGroup.POST("/login", r.Login)
	authGroup.POST("/employees/login", r.EmployeeLogin)
	authGroup.POST("/logout", r.authorizer.WithAuthMiddleware(r, r.Logout))
	authGroup.GET("/session", r.authorizer.WithAuthMiddleware(r, r.GetSession))
	authGroup.GET("/sessions", r.authorizer.WithAuthMiddleware(r, r.GetSessions))

	routerGroup.GET("/modules", r.authorizer.WithAuthMiddleware(r, r.GetModules))
	routerGroup.GET("/dashboard", r.authorizer.WithAuthMiddleware(r, r.GetDashboard))

	resourceGroup := routerGroup.Group("/resources/:module/:name")
	resourceGroup.GET("", r.authorizer.WithAuthMiddleware(r, r.ListResource))
	resourceGroup.GET("/export", r.authorizer.WithAuthMiddleware(r, r.ExportResource))
	resourceGroup.GET("/:id", r.authorizer.WithAuthMiddleware(r, r.GetResourceItem))
}

func (r *apiV1Router) GetAuthToken(ctx *gin.Context) string {
	return common.AuthToken(ctx, r.cfg.Auth.CookieName)
}

func (r *apiV1Router) HandleUnauthorized(ctx *gin.Context) {
	models.SendAPIError(ctx, http.StatusUnauthorized, "you are not authorized to use this operation")
}

func (r *apiV1Router) HandleForbidden(ctx *gin.Context) {
	models.SendAPIError(ctx, http.StatusForbidden, "you do not have access to this resource")
}

// sendResourceError responds with the status matching an error returned while reading a resource
func (r *apiV1Router) sendResourceError(ctx *gin.Context, msg string, err error) {
	status, userMsg := common.ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		r.logger.Error(msg, zap.Error(err))
	} else {
		r.logger.Debug(msg, zap.Error(err))
	}
	models.SendAPIError(ctx, status, userMsg)
}
