package frontend

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/authorization"
	"github.com/unicsmcr/bizdash/config/role"
	"github.com/unicsmcr/bizdash/resources"
	"github.com/unicsmcr/bizdash/routers/common"
	"github.com/unicsmcr/bizdash/services"
	"github.com/unicsmcr/bizdash/upstream"
	"go.uber.org/zap"
)

// Index sends logged in users to their landing page and everyone else to the login page
func (r *frontendRouter) Index(ctx *gin.Context) {
	token := r.GetAuthToken(ctx)
	if len(token) == 0 {
		ctx.Redirect(http.StatusSeeOther, loginPath)
		return
	}

	session, err := r.authorizer.GetSessionFromToken(ctx.Request.Context(), token)
	if err != nil {
		r.logger.Debug("could not load session for index", zap.Error(err))
		ctx.Redirect(http.StatusSeeOther, loginPath)
		return
	}

	ctx.Redirect(http.StatusSeeOther, role.LandingPath(session.Roles))
}

func (r *frontendRouter) LoginPage(ctx *gin.Context) {
	r.renderPage(ctx, http.StatusOK, loginPage, "", loginPageDataModel{})
}

func (r *frontendRouter) Login(ctx *gin.Context) {
	credentials := common.Credentials{
		Email:    ctx.PostForm("email"),
		Password: ctx.PostForm("password"),
		Employee: ctx.PostForm("employee") == "on",
	}
	pageData := loginPageDataModel{Email: credentials.Email, Employee: credentials.Employee}

	if len(credentials.Email) == 0 {
		r.logger.Debug("email was not provided")
		r.renderPage(ctx, http.StatusBadRequest, loginPage, "email is required", pageData)
		return
	}

	if len(credentials.Password) == 0 {
		r.logger.Debug("password was not provided")
		r.renderPage(ctx, http.StatusBadRequest, loginPage, "password is required", pageData)
		return
	}

	session, token, err := common.StartSession(ctx.Request.Context(), r.client, r.sessionService, r.authorizer, credentials)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			r.logger.Debug("backend rejected credentials", zap.String("email", credentials.Email), zap.Error(err))
			r.renderPage(ctx, http.StatusUnauthorized, loginPage, "invalid email or password", pageData)
			return
		}

		r.logger.Error("could not start session", zap.String("email", credentials.Email), zap.Error(err))
		r.renderPage(ctx, http.StatusBadGateway, loginPage, "could not log in, please try again later", pageData)
		return
	}

	common.SetAuthCookie(ctx, r.cfg, token)
	ctx.Redirect(http.StatusSeeOther, role.LandingPath(session.Roles))
}

func (r *frontendRouter) Logout(ctx *gin.Context) {
	token := r.GetAuthToken(ctx)
	if len(token) > 0 {
		session, err := r.authorizer.GetSessionFromToken(ctx.Request.Context(), token)
		if err == nil {
			err = r.sessionService.DeleteSession(ctx.Request.Context(), session.ID)
		}
		if err != nil && errors.Cause(err) != services.ErrInvalidToken && errors.Cause(err) != services.ErrNotFound {
			r.logger.Error("could not delete session on logout", zap.Error(err))
		}
	}

	common.ClearAuthCookie(ctx, r.cfg)
	ctx.Redirect(http.StatusSeeOther, loginPath)
}

// modulePage returns the handler of the landing page of module
func (r *frontendRouter) modulePage(module resources.Module) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, ok := authorization.SessionFromContext(ctx)
		if !ok {
			r.HandleUnauthorized(ctx)
			return
		}

		ctx.Set(moduleContextKey, module.Name)
		var moduleResources []resources.Resource
		for _, resource := range common.VisibleResources(r.catalog, session) {
			if resource.Module == module.Name {
				moduleResources = append(moduleResources, resource)
			}
		}

		r.renderPage(ctx, http.StatusOK, modulePage, "", modulePageDataModel{
			Title:     module.Title,
			Resources: moduleResources,
		})
	}
}

func (r *frontendRouter) AdminPage(ctx *gin.Context) {
	session, ok := authorization.SessionFromContext(ctx)
	if !ok {
		r.HandleUnauthorized(ctx)
		return
	}

	r.renderPage(ctx, http.StatusOK, modulePage, "", modulePageDataModel{
		Title:     "Administration",
		Resources: common.VisibleResources(r.catalog, session),
	})
}

// pageResource returns the resource named by the url params if the session may open it.
// It renders the error page and returns false when either is unavailable.
func (r *frontendRouter) pageResource(ctx *gin.Context) (resources.Resource, bool) {
	session, ok := authorization.SessionFromContext(ctx)
	if !ok {
		r.HandleUnauthorized(ctx)
		return resources.Resource{}, false
	}

	resource, err := r.catalog.Get(ctx.Param("module"), ctx.Param("name"))
	if err != nil {
		r.logger.Debug("unknown resource page requested", zap.Error(err))
		r.renderError(ctx, http.StatusNotFound, "page not found")
		return resources.Resource{}, false
	}

	if !resource.AllowedFor(session.Roles) {
		r.HandleForbidden(ctx)
		return resources.Resource{}, false
	}

	return resource, true
}

// TablePage renders the searchable table of a resource. A failed fetch renders the
// error together with an empty table.
func (r *frontendRouter) TablePage(ctx *gin.Context) {
	resource, ok := r.pageResource(ctx)
	if !ok {
		return
	}
	session, _ := authorization.SessionFromContext(ctx)

	search, sort := ctx.Query("search"), ctx.Query("sort")
	order := "asc"
	if ctx.Query("order") == "desc" {
		order = "desc"
	}
	pageData := tablePageDataModel{
		Resource: resource,
		Search:   search,
		Sort:     sort,
		Order:    order,
		Rows:     []tableRow{},
	}

	result, err := r.resourceService.List(ctx.Request.Context(), session, resource, services.ListQuery{
		Search: search,
		Sort:   sort,
		Desc:   order == "desc",
	})
	if err != nil {
		status, msg := common.ErrorStatus(err)
		r.logger.Warn("could not fetch resource for table", zap.String("resource", resource.Key()), zap.Error(err))
		pageData.Error = msg
		pageData.Relogin = status == http.StatusUnauthorized
		r.renderPage(ctx, http.StatusOK, tablePage, msg, pageData)
		return
	}

	for _, record := range result.Rows {
		cells := make([]string, 0, len(resource.Fields))
		for _, field := range resource.Fields {
			cells = append(cells, resources.Format(field, record[field.Name]))
		}
		pageData.Rows = append(pageData.Rows, tableRow{
			ID:    resource.IDOf(record),
			Cells: cells,
		})
	}
	pageData.Total = len(result.Rows)

	r.renderPage(ctx, http.StatusOK, tablePage, "", pageData)
}

func (r *frontendRouter) DetailPage(ctx *gin.Context) {
	resource, ok := r.pageResource(ctx)
	if !ok {
		return
	}
	session, _ := authorization.SessionFromContext(ctx)

	id := ctx.Param("id")
	record, err := r.resourceService.Get(ctx.Request.Context(), session, resource, id)
	if err != nil {
		status, msg := common.ErrorStatus(err)
		r.logger.Warn("could not fetch resource item", zap.String("resource", resource.Key()),
			zap.String("id", id), zap.Error(err))
		r.renderError(ctx, status, msg)
		return
	}

	r.renderPage(ctx, http.StatusOK, detailPage, "", detailPageDataModel{
		Resource: resource,
		ID:       id,
		View:     resources.View(resource, record),
	})
}
