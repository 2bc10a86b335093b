package frontend

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/bizdash/authorization"
	"github.com/unicsmcr/bizdash/config"
	"github.com/unicsmcr/bizdash/config/role"
	"github.com/unicsmcr/bizdash/resources"
	"github.com/unicsmcr/bizdash/routers/api/models"
	"github.com/unicsmcr/bizdash/routers/common"
	"github.com/unicsmcr/bizdash/services"
	"github.com/unicsmcr/bizdash/upstream"
	"go.uber.org/zap"
)

const loginPath = "/login"

type Router interface {
	models.Router
	Index(*gin.Context)
	LoginPage(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	AdminPage(*gin.Context)
	TablePage(*gin.Context)
	DetailPage(*gin.Context)
}

type frontendRouter struct {
	models.BaseRouter
	logger          *zap.Logger
	cfg             *config.AppConfig
	authorizer      authorization.Authorizer
	client          upstream.Client
	sessionService  services.SessionService
	resourceService services.ResourceService
	catalog         *resources.Catalog
}

func NewRouter(logger *zap.Logger, cfg *config.AppConfig, authorizer authorization.Authorizer, client upstream.Client,
	sessionService services.SessionService, resourceService services.ResourceService, catalog *resources.Catalog) Router {
	return &frontendRouter{
		logger:          logger,
		cfg:             cfg,
		authorizer:      authorizer,
		client:          client,
		sessionService:  sessionService,
		resourceService: resourceService,
		catalog:         catalog,
	}
}

func (r *frontendRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("", r.Index)
	routerGroup.GET("login", r.LoginPage)
	routerGroup.POST("login", r.Login)
	routerGroup.GET("logout", r.Logout)

	routerGroup.GET(strings.TrimPrefix(role.AdminPath, "/"),
		r.authorizer.WithAuthMiddleware(r, authorization.RequireRoles(r, r.AdminPage, role.Admin)))
	for _, module := range resources.Modules {
		var required []role.UserRole
		if len(module.Role) > 0 {
			required = append(required, module.Role)
		}
		routerGroup.GET(strings.TrimPrefix(module.Path, "/"),
			r.authorizer.WithAuthMiddleware(r, authorization.RequireRoles(r, r.modulePage(module), required...)))
	}

	routerGroup.GET("m/:module/:name", r.authorizer.WithAuthMiddleware(r, r.TablePage))
	routerGroup.GET("m/:module/:name/:id", r.authorizer.WithAuthMiddleware(r, r.DetailPage))
}

func (r *frontendRouter) GetAuthToken(ctx *gin.Context) string {
	return common.AuthToken(ctx, r.cfg.Auth.CookieName)
}

func (r *frontendRouter) HandleUnauthorized(ctx *gin.Context) {
	ctx.Redirect(http.StatusSeeOther, loginPath)
	ctx.Abort()
}

func (r *frontendRouter) HandleForbidden(ctx *gin.Context) {
	r.renderError(ctx, http.StatusForbidden, "you do not have access to this page")
}
